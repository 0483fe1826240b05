package executor

import (
	"fmt"
	"strconv"
)

// Builders turn validated parameter maps into argv slices. They are pure:
// no shell interpolation, no quoting, every value its own element. Unknown
// or out-of-range values fail the build; nothing reaches the process table.

// WordlistResolver maps a wordlist alias (common, rockyou, ...) to a path.
// Unknown aliases pass through as literal paths.
type WordlistResolver func(alias string) string

type buildFunc func(p params, wl WordlistResolver) ([]string, error)

var builders = map[string]buildFunc{
	"nmap":         buildNmap,
	"masscan":      buildMasscan,
	"netcat":       buildNetcat,
	"traceroute":   buildTraceroute,
	"nikto":        buildNikto,
	"wpscan":       buildWpscan,
	"whatweb":      buildWhatweb,
	"gobuster":     buildGobuster,
	"ffuf":         buildFfuf,
	"sqlmap":       buildSqlmap,
	"searchsploit": buildSearchsploit,
	"msfvenom":     buildMsfvenom,
	"hydra":        buildHydra,
	"john":         buildJohn,
	"hashcat":      buildHashcat,
	"enum4linux":   buildEnum4linux,
	"dig":          buildDig,
	"whois":        buildWhois,
	"dnsrecon":     buildDnsrecon,
}

// params wraps the raw parameter map with typed, defaulting accessors.
// JSON numbers arrive as float64.
type params map[string]any

func (p params) str(key, def string) string {
	if v, ok := p[key].(string); ok && v != "" {
		return v
	}
	return def
}

func (p params) requireStr(key string) (string, error) {
	v, ok := p[key].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("missing required parameter %q", key)
	}
	return v, nil
}

func (p params) num(key string, def int) int {
	switch v := p[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

func (p params) requireNum(key string) (int, error) {
	switch v := p[key].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	}
	return 0, fmt.Errorf("missing required parameter %q", key)
}

func (p params) boolean(key string, def bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return def
}

func itoa(n int) string { return strconv.Itoa(n) }

func buildNmap(p params, _ WordlistResolver) ([]string, error) {
	target, err := p.requireStr("target")
	if err != nil {
		return nil, err
	}
	ports := p.str("ports", "1-1000")

	argv := []string{"nmap"}
	switch scan := p.str("scan_type", "basic"); scan {
	case "quick":
		argv = append(argv, "-F")
	case "basic":
		argv = append(argv, "-p", ports)
	case "version":
		argv = append(argv, "-sV", "-p", ports)
	case "aggressive":
		argv = append(argv, "-A", "-p", ports)
	case "stealth":
		argv = append(argv, "-sS", "-p", ports)
	case "udp":
		argv = append(argv, "-sU", "-p", ports)
	default:
		return nil, fmt.Errorf("unknown scan_type %q", scan)
	}

	switch format := p.str("output_format", "normal"); format {
	case "normal":
	case "verbose":
		argv = append(argv, "-v")
	case "xml":
		argv = append(argv, "-oX", "-")
	default:
		return nil, fmt.Errorf("unknown output_format %q", format)
	}

	return append(argv, target), nil
}

func buildMasscan(p params, _ WordlistResolver) ([]string, error) {
	target, err := p.requireStr("target")
	if err != nil {
		return nil, err
	}
	return []string{
		"masscan", target,
		"-p", p.str("ports", "1-1000"),
		"--rate", itoa(p.num("rate", 100)),
	}, nil
}

func buildNetcat(p params, _ WordlistResolver) ([]string, error) {
	host, err := p.requireStr("host")
	if err != nil {
		return nil, err
	}
	port, err := p.requireNum("port")
	if err != nil {
		return nil, err
	}
	argv := []string{"nc", "-v", "-w", itoa(p.num("timeout", 5))}
	if p.boolean("udp", false) {
		argv = append(argv, "-u")
	}
	return append(argv, host, itoa(port)), nil
}

func buildTraceroute(p params, _ WordlistResolver) ([]string, error) {
	target, err := p.requireStr("target")
	if err != nil {
		return nil, err
	}
	return []string{"traceroute", "-m", itoa(p.num("max_hops", 30)), target}, nil
}

func buildNikto(p params, _ WordlistResolver) ([]string, error) {
	target, err := p.requireStr("target")
	if err != nil {
		return nil, err
	}
	argv := []string{
		"nikto",
		"-h", target,
		"-p", itoa(p.num("port", 80)),
		"-Tuning", p.str("tuning", "1234"),
	}
	if p.boolean("ssl", false) {
		argv = append(argv, "-ssl")
	}
	return argv, nil
}

func buildWpscan(p params, _ WordlistResolver) ([]string, error) {
	url, err := p.requireStr("url")
	if err != nil {
		return nil, err
	}
	argv := []string{
		"wpscan",
		"--url", url,
		"--enumerate", p.str("enumerate", "vp,vt,u"),
	}
	if token := p.str("api_token", ""); token != "" {
		argv = append(argv, "--api-token", token)
	}
	return argv, nil
}

func buildWhatweb(p params, _ WordlistResolver) ([]string, error) {
	target, err := p.requireStr("target")
	if err != nil {
		return nil, err
	}
	aggression := p.num("aggression", 1)
	if aggression < 1 || aggression > 4 {
		return nil, fmt.Errorf("aggression %d out of range 1-4", aggression)
	}
	argv := []string{"whatweb", "-a", itoa(aggression)}
	if p.boolean("verbose", true) {
		argv = append(argv, "-v")
	}
	return append(argv, target), nil
}

func buildGobuster(p params, wl WordlistResolver) ([]string, error) {
	target, err := p.requireStr("target")
	if err != nil {
		return nil, err
	}
	wordlist := wl(p.str("wordlist", "common"))
	threads := itoa(p.num("threads", 10))

	switch mode := p.str("mode", "dir"); mode {
	case "dir":
		return []string{
			"gobuster", "dir",
			"-u", target,
			"-w", wordlist,
			"-x", p.str("extensions", "php,html,txt"),
			"-t", threads,
		}, nil
	case "dns":
		return []string{"gobuster", "dns", "-d", target, "-w", wordlist, "-t", threads}, nil
	case "vhost":
		return []string{"gobuster", "vhost", "-u", target, "-w", wordlist, "-t", threads}, nil
	default:
		return nil, fmt.Errorf("unknown gobuster mode %q", mode)
	}
}

func buildFfuf(p params, wl WordlistResolver) ([]string, error) {
	url, err := p.requireStr("url")
	if err != nil {
		return nil, err
	}
	return []string{
		"ffuf",
		"-u", url,
		"-w", wl(p.str("wordlist", "common")),
		"-t", itoa(p.num("threads", 40)),
	}, nil
}

func buildSqlmap(p params, _ WordlistResolver) ([]string, error) {
	url, err := p.requireStr("url")
	if err != nil {
		return nil, err
	}
	level := p.num("level", 1)
	if level < 1 || level > 5 {
		return nil, fmt.Errorf("level %d out of range 1-5", level)
	}
	risk := p.num("risk", 1)
	if risk < 1 || risk > 3 {
		return nil, fmt.Errorf("risk %d out of range 1-3", risk)
	}

	argv := []string{
		"sqlmap",
		"-u", url,
		"--batch",
		"--level=" + itoa(level),
		"--risk=" + itoa(risk),
		"--technique=" + p.str("technique", "BEUST"),
	}
	if data := p.str("data", ""); data != "" {
		argv = append(argv, "--data="+data)
	}
	if cookie := p.str("cookie", ""); cookie != "" {
		argv = append(argv, "--cookie="+cookie)
	}
	return argv, nil
}

func buildSearchsploit(p params, _ WordlistResolver) ([]string, error) {
	query, err := p.requireStr("query")
	if err != nil {
		return nil, err
	}
	argv := []string{"searchsploit"}
	if p.boolean("exact", false) {
		argv = append(argv, "-t")
	}
	return append(argv, query), nil
}

func buildMsfvenom(p params, _ WordlistResolver) ([]string, error) {
	lhost, err := p.requireStr("lhost")
	if err != nil {
		return nil, err
	}
	argv := []string{
		"msfvenom",
		"-p", p.str("payload", "linux/x64/meterpreter/reverse_tcp"),
		"LHOST=" + lhost,
		"LPORT=" + itoa(p.num("lport", 4444)),
	}
	if format := p.str("format", "raw"); format != "raw" {
		argv = append(argv, "-f", format)
	}
	return append(argv, "-o", p.str("output", "payload.bin")), nil
}

func buildHydra(p params, wl WordlistResolver) ([]string, error) {
	target, err := p.requireStr("target")
	if err != nil {
		return nil, err
	}
	service, err := p.requireStr("service")
	if err != nil {
		return nil, err
	}
	username, err := p.requireStr("username")
	if err != nil {
		return nil, err
	}

	argv := []string{
		"hydra",
		"-l", username,
		"-P", wl(p.str("password_list", "rockyou")),
		"-t", itoa(p.num("threads", 4)),
	}
	if port := p.num("port", 0); port > 0 {
		argv = append(argv, "-s", itoa(port))
	}
	return append(argv, target, service), nil
}

func buildJohn(p params, wl WordlistResolver) ([]string, error) {
	hashFile, err := p.requireStr("hash_file")
	if err != nil {
		return nil, err
	}
	argv := []string{"john", "--wordlist=" + wl(p.str("wordlist", "rockyou"))}
	if format := p.str("format", ""); format != "" {
		argv = append(argv, "--format="+format)
	}
	return append(argv, hashFile), nil
}

func buildHashcat(p params, wl WordlistResolver) ([]string, error) {
	hashFile, err := p.requireStr("hash_file")
	if err != nil {
		return nil, err
	}
	mode, err := p.requireNum("mode")
	if err != nil {
		return nil, err
	}
	return []string{
		"hashcat",
		"-m", itoa(mode),
		"-a", "0",
		hashFile,
		wl(p.str("wordlist", "rockyou")),
	}, nil
}

func buildEnum4linux(p params, _ WordlistResolver) ([]string, error) {
	target, err := p.requireStr("target")
	if err != nil {
		return nil, err
	}
	argv := []string{"enum4linux"}
	switch scan := p.str("scan_type", "all"); scan {
	case "all":
		argv = append(argv, "-a")
	case "users":
		argv = append(argv, "-U")
	case "shares":
		argv = append(argv, "-S")
	case "groups":
		argv = append(argv, "-G")
	case "password_policy":
		argv = append(argv, "-P")
	default:
		return nil, fmt.Errorf("unknown scan_type %q", scan)
	}
	return append(argv, target), nil
}

func buildDig(p params, _ WordlistResolver) ([]string, error) {
	domain, err := p.requireStr("domain")
	if err != nil {
		return nil, err
	}
	argv := []string{"dig", domain, p.str("record_type", "A")}
	if server := p.str("dns_server", ""); server != "" {
		argv = append(argv, "@"+server)
	}
	return argv, nil
}

func buildWhois(p params, _ WordlistResolver) ([]string, error) {
	target, err := p.requireStr("target")
	if err != nil {
		return nil, err
	}
	return []string{"whois", target}, nil
}

func buildDnsrecon(p params, _ WordlistResolver) ([]string, error) {
	domain, err := p.requireStr("domain")
	if err != nil {
		return nil, err
	}
	return []string{"dnsrecon", "-d", domain}, nil
}
