package catalog

// Embedded resource names, also used as schema identifiers
const (
	SchemaName  = "toolbox.schema.json"
	catalogFile = "data/toolbox.json"
	schemaFile  = "data/toolbox.schema.json"
)

// Log messages
const (
	LogMsgCatalogLoaded   = "Toolbox catalog loaded"
	LogMsgCatalogOverride = "Loading toolbox catalog from file"
)
