package configs

import _ "embed"

// Application is the default application.yml, used when PROPERTIES_FILE_PATH is unset.
//
//go:embed application.yml
var Application []byte

// Messages is the default messages.yml, used when MESSAGES_FILE_PATH is unset.
//
//go:embed messages.yml
var Messages []byte
