package index

import (
	"net/http"
)

const help = `GET  /value[?interval=closed|half-open]  random value as text
POST /value {"interval":"closed"}        random value as JSON
GET  /ping                               entropy source health check
`

// New возвращает http.HandlerFunc со списком доступных маршрутов.
func New() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(help))
	}
}
