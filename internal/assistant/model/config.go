package model

// ================ Config ================

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port int    `envconfig:"SERVER_PORT" default:"8000"`
}

type ResponseModelConfig struct {
	Model       string  `envconfig:"RESPONSE_MODEL" default:"gemini-2.0-flash"`
	MaxTokens   int     `envconfig:"RESPONSE_MAX_TOKENS" default:"2000"`
	Temperature float32 `envconfig:"RESPONSE_TEMPERATURE" default:"0.4"`
}

type PromptConfig struct {
	InstituteName string `envconfig:"PROMPT_INSTITUTE_NAME" default:"Oreana Educational Institute"`
}

// LeadStoreConfig selects and parameterises the lead persistence backend.
type LeadStoreConfig struct {
	Backend string `envconfig:"LEADS_BACKEND" default:"file"`
	Path    string `envconfig:"LEADS_FILE" default:"leads.json"`
	Key     string `envconfig:"LEADS_REDIS_KEY" default:"leads:records"`
}
