package delivery

import (
	"net/http"

	"github.com/goccy/go-json"
)

type listResponse[T any] struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    []T  `json:"data"`
}

type itemResponse[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeList[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, listResponse[T]{Success: true, Count: len(items), Data: items})
}

func writeItem[T any](w http.ResponseWriter, item T) {
	writeJSON(w, http.StatusOK, itemResponse[T]{Success: true, Data: item})
}

func writeFail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Success: false, Error: msg})
}
