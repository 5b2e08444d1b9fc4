// Package config loads the application configuration from a YAML file.
//
// A configuration file has one section per component:
//
//	logger:
//	  level: info
//	  encoding: json
//	  service_name: bank
//	  file:
//	    path: /var/log/bank/trace.log
//	    max_size_mb: 50
//	selector:
//	  type_marker: LogMe
//	  method_marker: LogMe
//	  manifest: manifest.yaml
//	interceptor:
//	  structured_fields: true
//
// Every section is optional. Missing values take the component defaults.
// A relative manifest path is resolved against the directory of the
// configuration file.
//
// FXModule splits a loaded Config into the per-component configs expected by
// logger.FXModule, selector.FXModule and interceptor.FXModule.
package config
