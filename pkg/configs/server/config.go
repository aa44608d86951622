package server

// ServerConfig is the configuration of the toriid API server.
type ServerConfig struct {
	// port (or host:port) the API server listens on.
	ServerPort string `yaml:"port"`

	// postgres connection string of the tracking database.
	DBURI string `yaml:"dburi"`
}
