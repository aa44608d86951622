package server_test

import (
	"testing"

	kcf "github.com/torii-ml/torii/pkg/configs/server"
)

func TestLoadServerConfig(t *testing.T) {

	t.Run("it can be created from a config file", func(t *testing.T) {
		result, err := kcf.LoadServerConfig("./testdata/config.yaml")

		if err != nil {
			t.Errorf("failed to parse config.: %v", err)
		}
		expectedURI := "postgres://torii-test-pgdb-svc:32555/torii"
		if result.DBURI != expectedURI {
			t.Errorf("unmatch dburi:%s, expected:%s", result.DBURI, expectedURI)
		}
		expectedServerPort := "8080"
		if result.ServerPort != expectedServerPort {
			t.Errorf("unmatch serverport:%s, expected:%s", result.ServerPort, expectedServerPort)
		}
	})
}
