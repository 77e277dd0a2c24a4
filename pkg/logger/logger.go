// Package logger provides request scoped logging on top of glog.
package logger

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/glog"
	"github.com/openshift-online/ocm-sdk-go/authentication"
)

// LoggerKeys ...
type LoggerKeys string

// ActionKey ...
const (
	ActionKey       LoggerKeys = "Action"
	ActionResultKey LoggerKeys = "EventResult"
	RemoteAddrKey   LoggerKeys = "RemoteAddr"

	ActionFailed  LoggerKeys = "failed"
	ActionSuccess LoggerKeys = "success"
)

// UHCLogger ...
type UHCLogger interface {
	V(level int32) UHCLogger
	Infof(format string, args ...interface{})
	Info(args ...interface{})
	Warningf(format string, args ...interface{})
	Warning(args ...interface{})
	Errorf(format string, args ...interface{})
	Error(err error)
	Fatalf(format string, args ...interface{})
}

var _ UHCLogger = &logger{}

type logger struct {
	context  context.Context
	level    int32
	username string
	session  string
}

// Logger is the process wide logger used outside of requests.
var Logger = NewUHCLogger(context.Background())

// NewUHCLogger creates a new logger instance with a default verbosity of 1
func NewUHCLogger(ctx context.Context) UHCLogger {
	return &logger{
		context:  ctx,
		level:    1,
		username: getUsernameFromClaims(ctx),
		session:  getSessionFromClaims(ctx),
	}
}

func (l *logger) prepareLogPrefix(format string, args ...interface{}) string {
	orig := fmt.Sprintf(format, args...)
	prefix := " "

	if txid, ok := l.context.Value(TxIDKey).(int64); ok {
		prefix = fmt.Sprintf("[tx_id=%d]%s", txid, prefix)
	}

	if opid, ok := l.context.Value(OpIDKey).(string); ok {
		prefix = fmt.Sprintf("[opid=%s]%s", opid, prefix)
	}

	if l.session != "" {
		prefix = fmt.Sprintf("[session=%s]%s", l.session, prefix)
	}

	if l.username != "" {
		prefix = fmt.Sprintf("[user=%s]%s", l.username, prefix)
	}

	if result, ok := l.context.Value(ActionResultKey).(LoggerKeys); ok {
		prefix = fmt.Sprintf("[result=%s]%s", result, prefix)
	}

	return fmt.Sprintf("%s%s", prefix, orig)
}

// V ...
func (l *logger) V(level int32) UHCLogger {
	return &logger{
		context:  l.context,
		username: l.username,
		session:  l.session,
		level:    level,
	}
}

// Infof ...
func (l *logger) Infof(format string, args ...interface{}) {
	prefixed := l.prepareLogPrefix(format, args...)
	glog.V(glog.Level(l.level)).InfoDepth(1, prefixed)
}

// Info ...
func (l *logger) Info(args ...interface{}) {
	prefixed := l.prepareLogPrefix("%s", fmt.Sprint(args...))
	glog.V(glog.Level(l.level)).InfoDepth(1, prefixed)
}

// Warningf ...
func (l *logger) Warningf(format string, args ...interface{}) {
	prefixed := l.prepareLogPrefix(format, args...)
	glog.WarningDepth(1, prefixed)
}

// Warning ...
func (l *logger) Warning(args ...interface{}) {
	prefixed := l.prepareLogPrefix("%s", fmt.Sprint(args...))
	glog.WarningDepth(1, prefixed)
}

// Errorf ...
func (l *logger) Errorf(format string, args ...interface{}) {
	prefixed := l.prepareLogPrefix(format, args...)
	glog.ErrorDepth(1, prefixed)
}

// Error ...
func (l *logger) Error(err error) {
	prefixed := l.prepareLogPrefix("%s", err.Error())
	glog.ErrorDepth(1, prefixed)
}

// Fatalf ...
func (l *logger) Fatalf(format string, args ...interface{}) {
	prefixed := l.prepareLogPrefix(format, args...)
	glog.FatalDepth(1, prefixed)
}

func claimsFromContext(ctx context.Context) jwt.MapClaims {
	token, err := authentication.TokenFromContext(ctx)
	if err != nil || token == nil || token.Claims == nil {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	return claims
}

func getSessionFromClaims(ctx context.Context) string {
	claims := claimsFromContext(ctx)
	if session, ok := claims["session_state"].(string); ok {
		return session
	}
	return ""
}

func getUsernameFromClaims(ctx context.Context) string {
	claims := claimsFromContext(ctx)
	if username, ok := claims["username"].(string); ok {
		return username
	}
	return ""
}

const logEventSeparator = "$$"

// LogEvent names a route so request logs can be grouped by event type.
type LogEvent struct {
	Type        string
	Description string
}

// NewLogEventFromString ...
func NewLogEventFromString(eventTypeAndDescription string) (logEvent LogEvent) {
	typeAndDesc := strings.Split(eventTypeAndDescription, logEventSeparator)
	sliceLen := len(typeAndDesc)

	if sliceLen > 0 {
		logEvent.Type = typeAndDesc[0]
	}

	if sliceLen > 1 {
		logEvent.Description = typeAndDesc[1]
	}

	return logEvent
}

// NewLogEvent ...
func NewLogEvent(eventType string, description ...string) LogEvent {
	res := LogEvent{
		Type: eventType,
	}

	if len(description) != 0 {
		res.Description = description[0]
	}

	return res
}

// ToString ...
func (l LogEvent) ToString() string {
	if l.Description != "" {
		return fmt.Sprintf("%s%s%s", l.Type, logEventSeparator, l.Description)
	}

	return l.Type
}
