package config

type Config struct {
	Application Application `yaml:"Application"`
}

type Application struct {
	LogLevel       string `yaml:"LogLevel" envconfig:"LOGLEVEL" usage:"trace, debug, info, warning or error"`
	PermissiveURLs bool   `yaml:"PermissiveURLs" envconfig:"PERMISSIVE_URLS" flag:"permissive-urls" usage:"accept any http(s) url, not only known platforms"`
	APIURL         string `yaml:"APIURL" envconfig:"API_URL" flag:"api-url" usage:"metadata backend base url"`
	LibraryDir     string `yaml:"LibraryDir" envconfig:"LIBRARY_DIR" usage:"durable storage directory"`
	StateDir       string `yaml:"StateDir" envconfig:"STATE_DIR" usage:"encrypted state directory"`
	TempDir        string `yaml:"TempDir" envconfig:"TEMP_DIR" usage:"transient download directory"`
	Passphrase     string `yaml:"Passphrase" envconfig:"PASSPHRASE" usage:"encryption passphrase for local state"`
	ShareAddr      string `yaml:"ShareAddr" envconfig:"SHARE_ADDR" usage:"listen address of the share intake"`
	TGBotToken     string `yaml:"TGBotToken" envconfig:"TG_BOT_TOKEN" usage:"telegram bot token, empty disables the bot"`
	ProxyURL       string `yaml:"ProxyURL" envconfig:"PROXY_URL" usage:"http proxy for outgoing requests"`
}
