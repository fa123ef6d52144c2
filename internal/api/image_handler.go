package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bozhidarvelkov/pixelmorph/internal/image"
	"github.com/bozhidarvelkov/pixelmorph/internal/user"
	"github.com/gorilla/mux"
)

type ImageHandler struct {
	images *image.Service
}

func NewImageHandler(images *image.Service) *ImageHandler {
	return &ImageHandler{images: images}
}

func (h *ImageHandler) AddImage(w http.ResponseWriter, r *http.Request) {
	author, ok := user.GetDBUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var in image.SaveInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	img, err := h.images.Add(r.Context(), in, author)
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, img)
}

func (h *ImageHandler) UpdateImage(w http.ResponseWriter, r *http.Request) {
	author, ok := user.GetDBUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	imageID := vars["imageID"]

	var in image.SaveInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	img, err := h.images.Update(r.Context(), imageID, in, author)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, img)
}

func (h *ImageHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	imageID := vars["imageID"]

	img, err := h.images.GetByID(r.Context(), imageID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, img)
}

func (h *ImageHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	author, ok := user.GetDBUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	imageID := vars["imageID"]

	if err := h.images.Delete(r.Context(), imageID, author); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]string{"message": "Image deleted"})
}

func (h *ImageHandler) ListImages(w http.ResponseWriter, r *http.Request) {
	author, ok := user.GetDBUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "page_size", 9)

	images, err := h.images.ListByAuthor(r.Context(), author.ID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, images)
}

func queryInt(r *http.Request, key string, defaultValue int) int {
	if s := r.URL.Query().Get(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			return v
		}
	}
	return defaultValue
}
