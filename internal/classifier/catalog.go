package classifier

// Rule names, in evaluation order.
const (
	RuleGreeting = "greeting"
	RuleNetwork  = "network"
	RuleVPN      = "vpn"
	RuleLogin    = "login"
	RulePrinter  = "printer"
	RuleSlowPC   = "slow_pc"
	RuleCrash    = "crash"
	RuleFallback = "fallback"
)

// defaultRules is built once and never mutated. Order is significant:
// the first rule with a matching keyword wins.
var defaultRules = []Rule{
	{
		Name:     RuleGreeting,
		Keywords: []string{"hi", "hello", "hey", "g'day", "gday"},
		Response: Response{
			Title: "Hi! 👋",
			Body:  "Tell me the issue (e.g., Wi‑Fi, VPN, login, printer, slow PC). I’ll give a quick checklist.",
		},
	},
	{
		Name:     RuleNetwork,
		Keywords: []string{"no internet", "internet not working", "wifi", "wi-fi", "can't connect", "cannot connect", "network down"},
		Response: Response{
			Title: "Wi‑Fi / No Internet – Quick Checklist",
			Steps: []string{
				"Check if other devices work on the same Wi‑Fi.",
				"Turn Wi‑Fi off/on (or airplane mode on/off).",
				"Restart router (if you control it) and restart your PC.",
				"Run: ipconfig /all  (Windows) → confirm you have an IP + DNS.",
				"Run: ipconfig /flushdns then ipconfig /renew.",
				"Test: ping 8.8.8.8 (internet) and ping google.com (DNS).",
				"If VPN is on, disconnect and re-test.",
				"If still failing: check adapter driver / disable+enable adapter.",
			},
			Tip: "If you tell me your OS (Windows/macOS) and error text, I can narrow it down.",
		},
	},
	{
		Name:     RuleVPN,
		Keywords: []string{"vpn", "forticlient", "cisco anyconnect", "anyconnect", "tunnel", "ssl vpn"},
		Response: Response{
			Title: "VPN Issue – Quick Checklist",
			Steps: []string{
				"Confirm your internet works before VPN.",
				"Check your username/password (caps lock, correct domain).",
				"Disconnect → wait 10 seconds → reconnect.",
				"Try a different network (mobile hotspot) to rule out network blocking.",
				"Check date/time on your device (wrong time breaks certs).",
				"If error mentions 'certificate' or 'TLS': update client + OS.",
				"If account locked: request password reset / unlock from admin.",
			},
			Tip: "Send me the exact VPN error code/message for a precise fix.",
		},
	},
	{
		Name:     RuleLogin,
		Keywords: []string{"can't login", "cannot login", "login failed", "password", "account locked", "locked out", "mfa", "2fa", "authenticator"},
		Response: Response{
			Title: "Login / Password – Quick Checklist",
			Steps: []string{
				"Check caps lock and keyboard layout.",
				"Try password reset (if available).",
				"If it’s a work/school account: verify the correct username format (e.g., user@domain).",
				"If MFA fails: check phone time sync and network.",
				"Try an incognito/private window for web logins.",
				"If locked: wait lockout period or request unlock.",
			},
			Tip: "Tell me if this is Windows login, email (Microsoft/Google), or a website.",
		},
	},
	{
		Name:     RulePrinter,
		Keywords: []string{"printer", "printing", "print queue", "spooler"},
		Response: Response{
			Title: "Printer Not Printing – Quick Checklist",
			Steps: []string{
				"Check power, paper, and any error lights on the printer.",
				"Confirm you’re on the same network as the printer (if network printer).",
				"Clear the print queue and try again.",
				"Restart the Print Spooler (Windows): services.msc → Print Spooler → Restart.",
				"Remove and re-add the printer (or reinstall driver).",
				"Try printing a test page.",
			},
			Tip: "If you share the printer model and OS, I can give exact steps.",
		},
	},
	{
		Name:     RuleSlowPC,
		Keywords: []string{"slow", "lag", "freezing", "high cpu", "high memory", "disk 100", "takes long"},
		Response: Response{
			Title: "Slow Computer – Quick Checklist",
			Steps: []string{
				"Restart the PC (quick win).",
				"Open Task Manager → sort by CPU/Memory/Disk and identify top process.",
				"Disable heavy startup apps (Task Manager → Startup).",
				"Free disk space (aim for 15–20% free).",
				"Run Windows Update and reboot after updates.",
				"Run a malware scan (Defender).",
				"If disk is always 100%: check for Windows Search/Update loops; consider SSD upgrade.",
			},
			Tip: "Tell me your device specs (RAM/SSD) and what is slow (boot, apps, internet).",
		},
	},
	{
		Name:     RuleCrash,
		Keywords: []string{"blue screen", "bsod", "crash", "rebooting", "stuck", "boot loop"},
		Response: Response{
			Title: "Crash / BSOD – Quick Checklist",
			Steps: []string{
				"Note the STOP code or error text on the screen.",
				"Disconnect external devices (USB, docks) and reboot.",
				"Boot into Safe Mode if it keeps crashing.",
				"Update drivers (especially display/network) and Windows updates.",
				"Check disk + memory: chkdsk /f and Windows Memory Diagnostic.",
				"If recent changes: roll back driver or System Restore.",
			},
			Tip: "Send the STOP code (e.g., MEMORY_MANAGEMENT) for targeted help.",
		},
	},
}

var defaultFallback = Response{
	Title: "Tell me a bit more",
	Body:  "What issue are you facing (Wi‑Fi, VPN, login, printer, slow PC)? Also tell me: OS (Windows/macOS), any error message, and what changed recently.",
}

// Rules returns a copy of the built-in catalog in evaluation order.
func Rules() []Rule {
	return cloneRules(defaultRules)
}

// Fallback returns the response used when no rule matches.
func Fallback() Response {
	return defaultFallback.clone()
}
