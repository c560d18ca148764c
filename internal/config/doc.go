// Package config loads renderprop.json, the project file read by the
// renderprop command.
//
// # Configuration File Structure
//
//	{
//	  "fixtures": "fixtures",
//	  "gallery": {
//	    "host": "localhost",
//	    "port": 7070,
//	    "watch": true,
//	    "pretty": true
//	  },
//	  "merge": {
//	    "handlerKeys": ["action"],
//	    "convention": true,
//	    "strict": false
//	  },
//	  "log": { "level": "info" },
//	  "metrics": { "namespace": "renderprop" },
//	  "tracing": { "tracerName": "renderprop" }
//	}
//
// Every field is optional. A project without renderprop.json runs on
// Default().
//
// # Usage
//
//	cfg, err := config.LoadFromWorkingDir()
//	if err != nil {
//	    return err
//	}
//	merger := cfg.Merger(logger, nil)
package config
