package config

func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		DataDirectory: "~/.local/share/kalibot",
	}
}

func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		AI: AIConfig{
			Provider:    "openai",
			Model:       "gpt-4o-mini",
			Temperature: 0.3,
			MaxTokens:   800,
			MaxContext:  10,
		},
		Security: SecurityConfig{
			CredentialStorage: "plaintext",
		},
		Timeouts:  DefaultTimeouts(),
		Wordlists: DefaultWordlists(),
	}
}

// DefaultTimeouts mirrors the tuning the stock deployment ships with:
// long-running scanners get ten minutes, brute-forcers thirty, lookups
// seconds. Values are in seconds.
func DefaultTimeouts() map[string]int {
	return map[string]int{
		"nmap":         600,
		"masscan":      600,
		"nikto":        600,
		"gobuster":     600,
		"ffuf":         600,
		"sqlmap":       600,
		"wpscan":       600,
		"whatweb":      120,
		"hydra":        1800,
		"john":         1800,
		"hashcat":      1800,
		"enum4linux":   300,
		"msfvenom":     120,
		"netcat":       30,
		"dig":          30,
		"whois":        30,
		"dnsrecon":     300,
		"traceroute":   120,
		"searchsploit": 30,
		// Package installs pull dependency trees; give them more room
		// than the general default.
		"install_package": 600,
		"default":         300,
	}
}

// DefaultWordlists maps the aliases the assistant is taught to use onto the
// stock Kali wordlist locations.
func DefaultWordlists() map[string]string {
	return map[string]string{
		"common":  "/usr/share/wordlists/dirb/common.txt",
		"medium":  "/usr/share/wordlists/dirbuster/directory-list-2.3-medium.txt",
		"big":     "/usr/share/wordlists/dirbuster/directory-list-2.3-big.txt",
		"dns":     "/usr/share/wordlists/dnsmap.txt",
		"rockyou": "/usr/share/wordlists/rockyou.txt",
	}
}

func GenerateSystemConfigTemplate() string {
	return `# KaliBot System Configuration
# Location: ~/.config/kalibot/settings.toml
# This file uses TOML format: https://toml.io

# Directory where run history and user config are stored
data_directory = "~/.local/share/kalibot"
`
}

func GenerateUserConfigTemplate() string {
	return `# KaliBot User Configuration
# Location: <data_directory>/config.toml
# This file uses TOML format: https://toml.io

[telegram]
# Telegram user IDs allowed to talk to the bot. Empty = open bot.
allowed_users = []

[ai]
# Provider for natural-language routing: "openai", "anthropic" or "ollama"
provider = "openai"
model = "gpt-4o-mini"
# temperature: determinism knob in [0,1]; max_tokens caps the reply length
temperature = 0.3
max_tokens = 800
# Number of recent messages kept as conversational context per user
max_context = 10

[security]
# Credential storage for API keys and the bot token:
# "plaintext" (credentials.toml, 0600) or "ssh_key" (AES-GCM, key derived
# from an SSH key signature)
credential_storage = "plaintext"
# ssh_key_path = "~/.ssh/id_ed25519"

# Per-tool execution timeouts in seconds (see [timeouts.default])
[timeouts]
default = 300

# Wordlist aliases resolved in tool parameters
[wordlists]
common = "/usr/share/wordlists/dirb/common.txt"
`
}
