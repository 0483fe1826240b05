package catalog

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Category names. Kept as plain strings in entries; these constants exist so
// transports can enumerate them without typos.
const (
	CategoryNetworkScan   = "network_scan"
	CategoryWebScan       = "web_scan"
	CategoryExploitation  = "exploitation"
	CategoryPassword      = "password"
	CategoryEnumeration   = "enumeration"
	CategoryDNS           = "dns"
	CategoryInfoGathering = "info_gathering"
	CategorySystem        = "system"
)

// BuiltinEntries returns the full builtin tool set. Schemas must describe
// every enum and default losslessly: the prompt composer renders them into
// the model's documentation, and the MCP server registers them verbatim.
func BuiltinEntries() []Entry {
	return []Entry{
		{
			Category: CategoryNetworkScan,
			Install:  "sudo apt install nmap",
			Tool: mcp.NewTool("nmap",
				mcp.WithDescription("Port and service scanning with Nmap. Discovers live hosts, open ports and running services."),
				mcp.WithString("target",
					mcp.Required(),
					mcp.Description("IP, CIDR range or domain to scan (e.g. 192.168.1.1, 192.168.1.0/24, example.com)"),
				),
				mcp.WithString("ports",
					mcp.Description("Ports to scan (e.g. 80, 1-1000, 80,443,8080)"),
					mcp.DefaultString("1-1000"),
				),
				mcp.WithString("scan_type",
					mcp.Description("Scan profile to run"),
					mcp.Enum("quick", "basic", "version", "aggressive", "stealth", "udp"),
					mcp.DefaultString("basic"),
				),
				mcp.WithString("output_format",
					mcp.Description("Output format"),
					mcp.Enum("normal", "verbose", "xml"),
					mcp.DefaultString("normal"),
				),
			),
		},
		{
			Category: CategoryNetworkScan,
			Install:  "sudo apt install masscan",
			Tool: mcp.NewTool("masscan",
				mcp.WithDescription("Ultra-fast port scanner. Can sweep very large address ranges in minutes."),
				mcp.WithString("target",
					mcp.Required(),
					mcp.Description("IP, range or network (e.g. 192.168.1.0/24)"),
				),
				mcp.WithString("ports",
					mcp.Description("Ports to scan (e.g. 80,443,8080 or 1-10000)"),
					mcp.DefaultString("1-1000"),
				),
				mcp.WithNumber("rate",
					mcp.Description("Packets per second (be careful with high values)"),
					mcp.DefaultNumber(100),
				),
			),
		},
		{
			Category: CategoryNetworkScan,
			Tool: mcp.NewTool("netcat",
				mcp.WithDescription("TCP/UDP connections and banner grabbing."),
				mcp.WithString("host",
					mcp.Required(),
					mcp.Description("Host to connect to"),
				),
				mcp.WithNumber("port",
					mcp.Required(),
					mcp.Description("Port"),
				),
				mcp.WithNumber("timeout",
					mcp.Description("Connection timeout in seconds"),
					mcp.DefaultNumber(5),
				),
				mcp.WithBoolean("udp",
					mcp.Description("Use UDP instead of TCP"),
					mcp.DefaultBool(false),
				),
			),
		},
		{
			Category: CategoryNetworkScan,
			Install:  "sudo apt install traceroute",
			Tool: mcp.NewTool("traceroute",
				mcp.WithDescription("Traces the packet route to a destination, showing intermediate hops."),
				mcp.WithString("target",
					mcp.Required(),
					mcp.Description("Destination IP or domain"),
				),
				mcp.WithNumber("max_hops",
					mcp.Description("Maximum number of hops"),
					mcp.DefaultNumber(30),
				),
			),
		},
		{
			Category: CategoryWebScan,
			Install:  "sudo apt install nikto",
			Tool: mcp.NewTool("nikto",
				mcp.WithDescription("Web server vulnerability scanner. Detects insecure configurations, dangerous files and outdated software."),
				mcp.WithString("target",
					mcp.Required(),
					mcp.Description("Website URL (e.g. http://example.com, https://192.168.1.1:8443)"),
				),
				mcp.WithBoolean("ssl",
					mcp.Description("Force SSL/TLS"),
					mcp.DefaultBool(false),
				),
				mcp.WithNumber("port",
					mcp.Description("Specific port to scan"),
					mcp.DefaultNumber(80),
				),
				mcp.WithString("tuning",
					mcp.Description("Test classes: 1=interesting files, 2=misconfiguration, 3=info disclosure, 4=injection"),
					mcp.DefaultString("1234"),
				),
			),
		},
		{
			Category: CategoryWebScan,
			Install:  "sudo gem install wpscan",
			Tool: mcp.NewTool("wpscan",
				mcp.WithDescription("WordPress-specific vulnerability scanner."),
				mcp.WithString("url",
					mcp.Required(),
					mcp.Description("WordPress site URL"),
				),
				mcp.WithString("enumerate",
					mcp.Description("What to enumerate: p=plugins, t=themes, u=users, vp=vulnerable plugins"),
					mcp.DefaultString("vp,vt,u"),
				),
				mcp.WithString("api_token",
					mcp.Description("WPScan API token (optional, unlocks vulnerability data)"),
				),
			),
		},
		{
			Category: CategoryWebScan,
			Install:  "sudo apt install whatweb",
			Tool: mcp.NewTool("whatweb",
				mcp.WithDescription("Web technology identification: CMS, frameworks, servers, versions, plugins."),
				mcp.WithString("target",
					mcp.Required(),
					mcp.Description("Site URL (e.g. https://example.com)"),
				),
				mcp.WithNumber("aggression",
					mcp.Description("Aggression level (1=passive, 3=aggressive, 4=heavy)"),
					mcp.DefaultNumber(1),
				),
				mcp.WithBoolean("verbose",
					mcp.Description("Verbose output"),
					mcp.DefaultBool(true),
				),
			),
		},
		{
			Category: CategoryWebScan,
			Install:  "sudo apt install gobuster",
			Tool: mcp.NewTool("gobuster",
				mcp.WithDescription("Directory, file, subdomain and vhost brute forcing. Fast and efficient."),
				mcp.WithString("target",
					mcp.Required(),
					mcp.Description("URL (for dir/vhost) or domain (for dns)"),
				),
				mcp.WithString("mode",
					mcp.Description("Operation mode"),
					mcp.Enum("dir", "dns", "vhost"),
					mcp.DefaultString("dir"),
				),
				mcp.WithString("wordlist",
					mcp.Description("Wordlist alias (common, medium, big, dns) or a custom path"),
					mcp.DefaultString("common"),
				),
				mcp.WithString("extensions",
					mcp.Description("File extensions to look for in dir mode (e.g. php,html,txt)"),
					mcp.DefaultString("php,html,txt"),
				),
				mcp.WithNumber("threads",
					mcp.Description("Concurrent threads"),
					mcp.DefaultNumber(10),
				),
			),
		},
		{
			Category: CategoryWebScan,
			Install:  "sudo apt install ffuf",
			Tool: mcp.NewTool("ffuf",
				mcp.WithDescription("Fast web fuzzer for content discovery. The URL must contain the FUZZ keyword."),
				mcp.WithString("url",
					mcp.Required(),
					mcp.Description("Target URL containing FUZZ (e.g. https://example.com/FUZZ)"),
				),
				mcp.WithString("wordlist",
					mcp.Description("Wordlist alias or path"),
					mcp.DefaultString("common"),
				),
				mcp.WithNumber("threads",
					mcp.Description("Concurrent threads"),
					mcp.DefaultNumber(40),
				),
			),
		},
		{
			Category: CategoryExploitation,
			Install:  "sudo apt install sqlmap",
			Tool: mcp.NewTool("sqlmap",
				mcp.WithDescription("Automatic SQL injection detection and exploitation, including database extraction."),
				mcp.WithString("url",
					mcp.Required(),
					mcp.Description("Vulnerable URL with parameters (e.g. http://site.com/page?id=1)"),
				),
				mcp.WithString("data",
					mcp.Description("POST data (e.g. username=admin&password=pass)"),
				),
				mcp.WithString("cookie",
					mcp.Description("Session cookie if required"),
				),
				mcp.WithNumber("level",
					mcp.Description("Test level (1-5, higher=more exhaustive)"),
					mcp.DefaultNumber(1),
				),
				mcp.WithNumber("risk",
					mcp.Description("Risk level (1-3, higher=more aggressive)"),
					mcp.DefaultNumber(1),
				),
				mcp.WithString("technique",
					mcp.Description("Techniques: B=Boolean, E=Error, U=Union, S=Stacked, T=Time"),
					mcp.DefaultString("BEUST"),
				),
			),
		},
		{
			Category: CategoryExploitation,
			Install:  "sudo apt install exploitdb",
			Tool: mcp.NewTool("searchsploit",
				mcp.WithDescription("Searches the Exploit-DB exploit database."),
				mcp.WithString("query",
					mcp.Required(),
					mcp.Description("Search term (software, CVE, etc.)"),
				),
				mcp.WithBoolean("exact",
					mcp.Description("Exact-title match"),
					mcp.DefaultBool(false),
				),
			),
		},
		{
			Category: CategoryExploitation,
			Install:  "sudo apt install metasploit-framework",
			Tool: mcp.NewTool("msfvenom",
				mcp.WithDescription("Metasploit payload generator."),
				mcp.WithString("lhost",
					mcp.Required(),
					mcp.Description("Listener host for the reverse connection"),
				),
				mcp.WithString("payload",
					mcp.Description("Payload type"),
					mcp.DefaultString("linux/x64/meterpreter/reverse_tcp"),
				),
				mcp.WithNumber("lport",
					mcp.Description("Listener port"),
					mcp.DefaultNumber(4444),
				),
				mcp.WithString("format",
					mcp.Description("Output format (raw, elf, exe, apk, ...)"),
					mcp.DefaultString("raw"),
				),
				mcp.WithString("output",
					mcp.Description("Output file path"),
					mcp.DefaultString("payload.bin"),
				),
			),
		},
		{
			Category: CategoryPassword,
			Install:  "sudo apt install hydra",
			Tool: mcp.NewTool("hydra",
				mcp.WithDescription("Brute-force attack against authentication services (SSH, FTP, HTTP, ...)."),
				mcp.WithString("target",
					mcp.Required(),
					mcp.Description("Target IP or hostname"),
				),
				mcp.WithString("service",
					mcp.Required(),
					mcp.Description("Service to attack"),
					mcp.Enum("ssh", "ftp", "http-get", "http-post-form", "mysql", "postgres", "rdp", "smb"),
				),
				mcp.WithString("username",
					mcp.Required(),
					mcp.Description("Specific user or path to a user list"),
				),
				mcp.WithString("password_list",
					mcp.Description("Password wordlist alias or path"),
					mcp.DefaultString("rockyou"),
				),
				mcp.WithNumber("threads",
					mcp.Description("Parallel tasks"),
					mcp.DefaultNumber(4),
				),
				mcp.WithNumber("port",
					mcp.Description("Custom port (optional)"),
				),
			),
		},
		{
			Category: CategoryPassword,
			Install:  "sudo apt install john",
			Tool: mcp.NewTool("john",
				mcp.WithDescription("John the Ripper password hash cracker."),
				mcp.WithString("hash_file",
					mcp.Required(),
					mcp.Description("Path to the file containing hashes"),
				),
				mcp.WithString("wordlist",
					mcp.Description("Wordlist alias or path"),
					mcp.DefaultString("rockyou"),
				),
				mcp.WithString("format",
					mcp.Description("Hash format hint (e.g. raw-md5, sha512crypt); optional"),
				),
			),
		},
		{
			Category: CategoryPassword,
			Install:  "sudo apt install hashcat",
			Tool: mcp.NewTool("hashcat",
				mcp.WithDescription("GPU-accelerated password hash cracker."),
				mcp.WithString("hash_file",
					mcp.Required(),
					mcp.Description("Path to the file containing hashes"),
				),
				mcp.WithNumber("mode",
					mcp.Required(),
					mcp.Description("Hash mode number (e.g. 0=MD5, 1000=NTLM, 1800=sha512crypt)"),
				),
				mcp.WithString("wordlist",
					mcp.Description("Wordlist alias or path"),
					mcp.DefaultString("rockyou"),
				),
			),
		},
		{
			Category: CategoryEnumeration,
			Install:  "sudo apt install enum4linux",
			Tool: mcp.NewTool("enum4linux",
				mcp.WithDescription("Windows/Samba information enumeration over SMB."),
				mcp.WithString("target",
					mcp.Required(),
					mcp.Description("Windows/Samba host IP"),
				),
				mcp.WithString("scan_type",
					mcp.Description("What to enumerate"),
					mcp.Enum("all", "users", "shares", "groups", "password_policy"),
					mcp.DefaultString("all"),
				),
			),
		},
		{
			Category: CategoryDNS,
			Tool: mcp.NewTool("dig",
				mcp.WithDescription("DNS queries: A, MX, NS, TXT and other record types."),
				mcp.WithString("domain",
					mcp.Required(),
					mcp.Description("Domain to query"),
				),
				mcp.WithString("record_type",
					mcp.Description("DNS record type"),
					mcp.Enum("A", "AAAA", "MX", "NS", "TXT", "CNAME", "SOA", "ANY"),
					mcp.DefaultString("A"),
				),
				mcp.WithString("dns_server",
					mcp.Description("DNS server to use (optional, e.g. 8.8.8.8)"),
				),
			),
		},
		{
			Category: CategoryDNS,
			Install:  "sudo apt install dnsrecon",
			Tool: mcp.NewTool("dnsrecon",
				mcp.WithDescription("DNS reconnaissance: standard record enumeration and zone-transfer checks."),
				mcp.WithString("domain",
					mcp.Required(),
					mcp.Description("Domain to enumerate"),
				),
			),
		},
		{
			Category: CategoryInfoGathering,
			Install:  "sudo apt install whois",
			Tool: mcp.NewTool("whois",
				mcp.WithDescription("Domain and IP registration data: owner, dates, name servers."),
				mcp.WithString("target",
					mcp.Required(),
					mcp.Description("Domain or IP to look up"),
				),
			),
		},

		// System operations: thin wrappers around OS primitives, exposed so
		// the assistant can fetch wordlists, clone repos and inspect files.
		{
			Category: CategorySystem,
			Tool: mcp.NewTool("download",
				mcp.WithDescription("Downloads a file over HTTP(S) with wget."),
				mcp.WithString("url",
					mcp.Required(),
					mcp.Description("URL to download"),
				),
				mcp.WithString("output",
					mcp.Description("Destination path (defaults to the download directory)"),
				),
			),
		},
		{
			Category: CategorySystem,
			Tool: mcp.NewTool("git_clone",
				mcp.WithDescription("Clones a Git repository."),
				mcp.WithString("repo",
					mcp.Required(),
					mcp.Description("Repository URL"),
				),
				mcp.WithString("dest",
					mcp.Description("Destination directory (defaults to the download directory)"),
				),
			),
		},
		{
			Category: CategorySystem,
			Tool: mcp.NewTool("install_package",
				mcp.WithDescription("Installs a package with the given package manager. Runs unprivileged; permission errors are reported back."),
				mcp.WithString("package",
					mcp.Required(),
					mcp.Description("Package name"),
				),
				mcp.WithString("manager",
					mcp.Description("Package manager"),
					mcp.Enum("apt", "pip", "pip3", "gem", "cargo", "npm"),
					mcp.DefaultString("apt"),
				),
			),
		},
		{
			Category: CategorySystem,
			Tool: mcp.NewTool("read_file",
				mcp.WithDescription("Reads the first lines of a text file."),
				mcp.WithString("file",
					mcp.Required(),
					mcp.Description("File path"),
				),
				mcp.WithNumber("lines",
					mcp.Description("Maximum lines to return"),
					mcp.DefaultNumber(50),
				),
			),
		},
		{
			Category: CategorySystem,
			Tool: mcp.NewTool("move_file",
				mcp.WithDescription("Moves a file or directory."),
				mcp.WithString("source",
					mcp.Required(),
					mcp.Description("Source path"),
				),
				mcp.WithString("dest",
					mcp.Required(),
					mcp.Description("Destination path"),
				),
			),
		},
		{
			Category: CategorySystem,
			Tool: mcp.NewTool("copy_file",
				mcp.WithDescription("Copies a file or directory."),
				mcp.WithString("source",
					mcp.Required(),
					mcp.Description("Source path"),
				),
				mcp.WithString("dest",
					mcp.Required(),
					mcp.Description("Destination path"),
				),
			),
		},
	}
}

// binaryFor maps catalog names to the binary discovery probes for. Catalog
// names and binaries match except for the system wrappers.
func binaryFor(name string) string {
	switch name {
	case "netcat":
		return "nc"
	case "download":
		return "wget"
	case "git_clone":
		return "git"
	case "install_package":
		return "apt-get"
	case "read_file", "move_file", "copy_file":
		return "" // native, always available
	default:
		return name
	}
}
