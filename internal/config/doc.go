// Package config provides the YAML job file describing which mapping
// sources populate which containers, the overlays applied on top, and how
// the result is exported.
//
// # Schema Overview
//
//	version: "1"
//	containers:
//	  - name: MCP
//	    version: "1.16.5"
//	    source:
//	      format: tsrg          # srg | tsrg | tiny | mcp-srg | mcp-tsrg
//	      path: joined.tsrg
//	      obf: obf              # namespace bindings, defaults per format
//	      intermediary: srg
//	    overlays:               # applied in order after the source
//	      - { kind: fields, path: fields.csv }
//	      - { kind: methods, path: methods.csv }
//	      - { kind: params, path: params.csv }
//	export:
//	  mode: merge               # project | merge
//	  namespaces: [named, obfMerged]
//	  ignoreMissing: true
//	  warnings: true
//	  obfNamespace: obf
//	  output: merged.tiny
//
// Relative paths are resolved against the directory of the job file.
package config
