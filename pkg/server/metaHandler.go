package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/pyrex41/docserve/api"
)

type metaHandler struct {
	server *DocServer
}

func (h *metaHandler) status(w http.ResponseWriter, _ *http.Request) {
	s := h.server
	out, err := json.Marshal(&api.ServerStatus{
		Service:       s.cfg.Title,
		Root:          s.manager.Dir,
		Addr:          s.Addr().String(),
		Blog:          s.manager.HasBlog(),
		UptimeSeconds: int64(time.Since(s.started).Seconds()),
	})
	if err != nil {
		wrapError(err, w)
		return
	}
	w.Header().Add(contentType, mimeAppJSON)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

func (h *metaHandler) list(w http.ResponseWriter, _ *http.Request) {
	files, err := h.server.manager.ListFileNames()
	if err != nil {
		wrapError(err, w)
		return
	}
	w.Header().Add(contentType, mimeTextPlain)
	w.WriteHeader(http.StatusOK)
	for _, value := range files {
		fileName := bytes.NewBufferString(value + "\n")
		if _, err := fileName.WriteTo(w); err != nil {
			log.Error(err)
			return
		}
	}
}
