package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

func logRequest(req *http.Request, requestID string, status int) {
	log.WithField("request_id", requestID).Infof("%s -- %s -- %s -- %d", req.RemoteAddr, req.Method, req.URL.Path, status)
}

func logAndReturnError(w http.ResponseWriter, r *http.Request, httpResponseStr string, code int, consoleStr ...string) {
	entry := log.WithFields(logrus.Fields{
		"remote": r.RemoteAddr,
		"method": r.Method,
		"path":   r.URL.Path,
		"status": code,
	})
	// consoleStr is optional.
	if len(consoleStr) > 0 {
		entry.Errorln(consoleStr[0])
	} else {
		entry.Errorln(httpResponseStr)
	}
	// Browsers need this to read the error from another origin.
	w.Header().Set("Access-Control-Allow-Origin", "*")
	http.Error(w, httpResponseStr, code)
}
