package ridership

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/ridership-insights/dataset"
)

type uploadResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name,omitempty"`
	Rows       int      `json:"rows"`
	Regions    []string `json:"regions"`
	Routes     []string `json:"routes"`
	UploadedAt string   `json:"uploadedAt"`
}

// handleUpload ingests a ridership CSV, either as a multipart "file" field or
// as the raw request body, and opens a new analysis session. A SchemaError
// aborts the whole upload; no partial session is created.
func (a *API) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.cfg.Dataset.MaxUploadBytes)

	src, name, err := uploadSource(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer src.Close()

	table, err := dataset.Load(src)
	if err != nil {
		var se *dataset.SchemaError
		if errors.As(err, &se) {
			a.log.Warn("upload rejected", zap.String("name", name), zap.String("reason", se.Msg))
			writeError(w, http.StatusBadRequest, se.Msg)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess := a.store.Create(name, table)
	a.log.Info("dataset uploaded",
		zap.String("id", sess.ID),
		zap.String("name", name),
		zap.Int("rows", table.Len()))

	writeJSON(w, http.StatusCreated, uploadResponse{
		ID:         sess.ID,
		Name:       sess.Name,
		Rows:       table.Len(),
		Regions:    table.Regions(),
		Routes:     table.Routes(),
		UploadedAt: sess.UploadedAt.Format(time.RFC3339),
	})
}

// uploadSource picks the CSV stream out of the request. Multipart uploads use
// the "file" field; anything else is treated as a raw CSV body.
func uploadSource(r *http.Request) (io.ReadCloser, string, error) {
	ct := r.Header.Get("Content-Type")
	mediaType, _, _ := mime.ParseMediaType(ct)
	if mediaType == "multipart/form-data" {
		f, hdr, err := r.FormFile("file")
		if err != nil {
			return nil, "", &QueryError{Msg: "multipart upload must carry a \"file\" field"}
		}
		return f, hdr.Filename, nil
	}
	return r.Body, "", nil
}

func (a *API) handleDeleteDataset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !a.store.Delete(id) {
		writeError(w, http.StatusNotFound, "no such dataset: "+id)
		return
	}
	a.log.Info("dataset deleted", zap.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}
