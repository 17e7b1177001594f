package logx

import (
	"fmt"
	"log"
	"strings"
)

// Единый формат строк лога для хендлеров:
// lvl=<info|error> req_id=<id> op=<op> msg=<msg> [err=<err>] [k=v ...]

func Info(l *log.Logger, reqID, op, msg string, kv ...any) {
	l.Printf("lvl=info req_id=%s op=%s msg=%q%s", reqID, op, msg, fields(kv))
}

func Error(l *log.Logger, reqID, op, msg string, err error, kv ...any) {
	l.Printf("lvl=error req_id=%s op=%s msg=%q err=%q%s", reqID, op, msg, errText(err), fields(kv))
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// fields собирает пары ключ-значение; непарный хвост игнорируем.
func fields(kv []any) string {
	if len(kv) < 2 {
		return ""
	}
	var b strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	return b.String()
}
