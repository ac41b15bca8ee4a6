package schemas

import _ "embed"

// ConfigSchema is the JSON Schema every --config file must satisfy before
// it is decoded into a config.Config.
//
//go:embed doclint-config.schema.json
var ConfigSchema string
