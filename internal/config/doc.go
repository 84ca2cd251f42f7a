// Package config provides configuration parsing for panekit servers.
//
// The configuration is stored in panekit.json in the working directory.
// This package handles loading, saving, validating and applying
// environment overrides.
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "address": ":8080",
//	    "readTimeout": "60s",
//	    "writeTimeout": "10s",
//	    "shutdownTimeout": "15s"
//	  },
//	  "services": {
//	    "path": "/_panekit/services",
//	    "versioned": true,
//	    "cacheMaxAge": "24h"
//	  },
//	  "sync": {
//	    "path": "/_panekit/sync"
//	  },
//	  "metrics": {
//	    "path": "/metrics",
//	    "namespace": "panekit"
//	  },
//	  "s3": {
//	    "bucket": "my-cdn",
//	    "region": "eu-west-1",
//	    "prefix": "libs/",
//	    "libraries": [
//	      {"id": "Vendor.Chart", "location": "chart.js"}
//	    ]
//	  },
//	  "logging": {
//	    "level": "info",
//	    "format": "text"
//	  }
//	}
//
// # Environment
//
// PANEKIT_ADDRESS overrides server.address and PANEKIT_LOG_LEVEL overrides
// logging.level.
package config
