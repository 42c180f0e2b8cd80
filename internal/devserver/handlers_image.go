package devserver

import (
	"errors"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/gorilla/mux"

	"github.com/wanderlust/travel-client/internal/devserver/respond"
)

// UploadImage POST /images/upload, multipart fields "file" and "authKey".
func (s *Server) UploadImage(w http.ResponseWriter, r *http.Request) {
	f, hdr, err := r.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			respond.WriteError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		respond.WriteBadRequest(w, "No file uploaded")
		return
	}
	defer f.Close()

	name := path.Base(strings.ReplaceAll(hdr.Filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		respond.WriteBadRequest(w, "Invalid file name")
		return
	}
	data, err := io.ReadAll(f)
	if err != nil {
		respond.WriteBadRequest(w, "Could not read file")
		return
	}
	ct := hdr.Header.Get("Content-Type")
	if ct == "" || ct == "application/octet-stream" {
		ct = http.DetectContentType(data)
	}
	s.store.PutImage(name, ct, data)
	respond.WriteJSON(w, http.StatusOK, map[string]string{
		"imageUrl": s.imageURL(r, name),
		"message":  "Image uploaded successfully",
	})
}

// ListImages GET /images/list?authKey=
func (s *Server) ListImages(w http.ResponseWriter, r *http.Request) {
	names := s.store.ImageNames()
	urls := make([]string, 0, len(names))
	for _, n := range names {
		urls = append(urls, s.imageURL(r, n))
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"images": urls})
}

// DeleteImage DELETE /images/delete/{filename}?authKey=
func (s *Server) DeleteImage(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteImage(mux.Vars(r)["filename"]); err != nil {
		writeStoreError(w, err, "Image not found")
		return
	}
	respond.WriteMessage(w, "Image deleted successfully")
}

// ServeImage GET /images/{filename}
func (s *Server) ServeImage(w http.ResponseWriter, r *http.Request) {
	img, err := s.store.Image(mux.Vars(r)["filename"])
	if err != nil {
		writeStoreError(w, err, "Image not found")
		return
	}
	w.Header().Set("Content-Type", img.ContentType)
	_, _ = w.Write(img.Data)
}

func (s *Server) imageURL(r *http.Request, name string) string {
	base := strings.TrimRight(s.opts.PublicURL, "/")
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + r.Host
	}
	return base + "/images/" + name
}
