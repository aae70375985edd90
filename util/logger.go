package util

import (
	"log"
	"os"
	"strings"
)

var authLogger *log.Logger

func init() {
	// In production this could write to a separate file.
	authLogger = log.New(os.Stdout, "[AUTH] ", log.LstdFlags|log.Lmsgprefix)
}

// sanitizeLogValue removes newlines and other characters that could break log parsing
func sanitizeLogValue(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\t", " ")
	// Truncate very long values to prevent log flooding
	if len(value) > 200 {
		value = value[:200] + "..."
	}
	return value
}

// LogLoginFailure records a failed login attempt with its internal reason.
// The reason stays server-side only: the HTTP response never distinguishes
// unknown users from wrong passwords.
func LogLoginFailure(username, ip, reason string) {
	authLogger.Printf("LOGIN_FAILURE username=%s ip=%s reason=%s",
		sanitizeLogValue(username), sanitizeLogValue(ip), sanitizeLogValue(reason))
}

// LogLoginSuccess records a successful login.
func LogLoginSuccess(username, ip string) {
	authLogger.Printf("LOGIN_SUCCESS username=%s ip=%s",
		sanitizeLogValue(username), sanitizeLogValue(ip))
}

// LogAdminAction records a state-changing administrative operation.
func LogAdminAction(action, target, ip string) {
	authLogger.Printf("ADMIN_ACTION action=%s target=%s ip=%s",
		sanitizeLogValue(action), sanitizeLogValue(target), sanitizeLogValue(ip))
}
