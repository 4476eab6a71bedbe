// Package logging provides the Pharos logging facade: leveled,
// structured loggers built on zap, configured through config.Config.
//
// # Quick Start
//
//	logger, err := logging.Setup("myservice", "/var/log/myservice", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer logger.Sync()
//
//	logger.Info("server started", zap.String("addr", ":8080"))
//
// # Configuration
//
// New builds a logger from a full configuration:
//
//	cfg, _ := config.Load("logging.yaml")
//	logger, err := logging.New(cfg)
//
// Console output goes to stdout or stderr with optional colored levels;
// file output rotates via lumberjack. Three formats are supported:
// text (single-line, human readable), json (one object per line), and
// structured (json plus caller and function).
//
// # Log Aggregation
//
// Aggregation builds the multi-file production layout: app.log for
// everything, errors.log for error and above, and dedicated
// performance.log and requests.log files fed by the loggers named
// "performance" and "requests":
//
//	logger, err := logging.Aggregation("/var/log/myservice", cfg)
//	perfLogger := logger.Named("performance") // routed to performance.log
package logging
