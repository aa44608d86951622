package main

import (
	"context"
	"flag"
	"log"
	"net/url"
	"path"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	sconf "github.com/torii-ml/torii/pkg/configs/server"
	ktorii "github.com/torii-ml/torii/pkg/domain/torii"
	"github.com/torii-ml/torii/pkg/utils/echoutil"
	"github.com/torii-ml/torii/pkg/utils/filewatch"
	kstrings "github.com/torii-ml/torii/pkg/utils/strings"

	"github.com/torii-ml/torii/cmd/toriid/handlers"
)

func main() {

	configPath := flag.String("config-path", "", "server config path")
	schemaRepo := flag.String("schema-repo", "", "path to the database schema repository")
	loglevel := flag.String("loglevel", "info", "log level. debug|info|warn|error|off")
	pcert := flag.String("cert", "", "certification file for TLS")
	pkey := flag.String("certkey", "", "key of certification file for TLS")
	flag.Parse()

	e := echo.New()
	e.Pre(middleware.AddTrailingSlash())

	// set log
	echoutil.SetLevel(e, *loglevel)
	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		e.DefaultHTTPErrorHandler(err, ctx)
		e.Logger.Error(err)
	}
	e.Use(echoutil.LogHandlerFunc)

	// read configfile
	conf, err := sconf.LoadServerConfig(*configPath)
	if err != nil {
		log.Fatalf("can not read configration: %s", err)
	}

	{
		ctx, cancel, err := filewatch.UntilModifyContext(context.Background(), *configPath)
		if err != nil {
			log.Fatalf("can not watch configration: %s", err)
		}
		defer cancel()
		context.AfterFunc(ctx, func() {
			log.Println("config file is updated. quit to restart server.")
			graceful, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := e.Shutdown(graceful); err != nil {
				log.Printf("error on shutdown by config update: %s", err)
			}
		})
	}

	api, err := root("/api")
	if err != nil {
		log.Fatalf("api root /api is invalid url or path: %s", err)
	}

	ctx := context.Background()
	torii, err := getDBAccesor(ctx, conf, *schemaRepo)
	if err != nil {
		log.Fatalf("can not connect to database: %s", err.Error())
	}
	defer torii.Close()

	if *schemaRepo != "" {
		sctx, cancel := torii.Schema().Database().Context(ctx)
		defer cancel()
		context.AfterFunc(sctx, func() {
			log.Println("database schema is outdated. quit to restart server.")
			graceful, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := e.Shutdown(graceful); err != nil {
				log.Printf("error on shutdown by schema update: %s", err)
			}
		})
	}

	// handlers
	{
		worker := torii.Worker().Database()
		e.GET(api("workers"), handlers.WorkerListHandler(worker))
		e.POST(api("workers"), handlers.WorkerRegisterHandler(worker))
		e.PUT(api("workers/:name/active"), handlers.WorkerSetActiveHandler(worker))
	}

	{
		metric := torii.Metric().Database()
		e.GET(api("metrics"), handlers.MetricListHandler(metric))
		e.POST(api("metrics"), handlers.MetricRegisterHandler(metric))
	}

	{
		experiment := torii.Experiment().Database()
		result := torii.Result().Database()
		e.GET(api("experiments"), handlers.FindExperimentHandler(experiment))
		e.POST(api("experiments"), handlers.ExperimentRegisterHandler(experiment))
		e.GET(api("experiments/:experimentId/"), handlers.GetExperimentHandler(experiment))
		e.GET(api("experiments/:experimentId/series"), handlers.ExperimentSeriesHandler(result))
	}

	{
		trial := torii.Trial().Database()
		result := torii.Result().Database()
		e.POST(api("trials"), handlers.TrialAdmissionHandler(trial))
		e.GET(api("trials"), handlers.FindTrialHandler(trial))
		e.GET(api("trials/:trialId/"), handlers.GetTrialHandler(trial))
		e.PUT(api("trials/:trialId/complete"), handlers.TrialCompleteHandler(trial))
		e.GET(api("trials/:trialId/results"), handlers.ListResultsByTrialHandler(result))
	}

	{
		result := torii.Result().Database()
		e.POST(api("results"), handlers.ResultReportHandler(result))
	}

	log.Println("registred routes:")
	for _, r := range e.Routes() {
		log.Println(r.Method, r.Path)
	}

	cert, key := *pcert, *pkey
	if cert != "" && key != "" {
		e.Logger.Fatal(e.StartTLS(":"+torii.Config().ServerPort, cert, key))
	} else {
		e.Logger.Fatal(e.Start(":" + torii.Config().ServerPort))
	}
}

func getDBAccesor(ctx context.Context, conf *sconf.ServerConfig, schemaRepo string) (ktorii.Torii, error) {
	options := []ktorii.Option{}
	if schemaRepo != "" {
		options = append(options, ktorii.WithSchemaRepository(schemaRepo))
	}
	return ktorii.New(ctx, conf, options...)
}

// create api URL factory
//
// args:
//   - root: api root
//
// return:
// - func: it receive relative path from root, and returns full-path of URL.
func root(r string) (func(...string) string, error) {
	//    when r is https://example.org:8080/api/root/path
	origin := "" // https://example.org:8080/ . "/" terminated. if r is path only, this is empty.
	base := ""   // /api/root/path
	{
		b, err := url.Parse(r)
		if err != nil {
			return nil, err
		}
		base = b.Path
		if b.Host != "" || b.Scheme != "" {
			_r := *b
			r := &_r
			r.RawPath = ""
			r.Path = ""
			r.RawQuery = ""
			r.Fragment = ""
			origin = r.String()
		}
	}
	origin = kstrings.SuppySuffix(origin, "/")

	return func(s ...string) string {
		parts := make([]string, len(s)+1)
		parts[0] = base
		copy(parts[1:], s)
		path := path.Join(parts...)
		path = kstrings.TrimPrefixAll(path, "/")

		return kstrings.SuppySuffix(origin+path, "/")
	}, nil
}
