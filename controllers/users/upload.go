package users

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"taskbazaar/utils"
)

// POST /v1/users/uploads/proof
// Accepts a multipart image and stores it in object storage. The returned
// signed URL goes into an image proof's image_url field.
func UploadProofHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := utils.GetUserID(r)
		if !ok || uid == "" {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
			return
		}

		if err := r.ParseMultipartForm(5 << 20); err != nil {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid multipart form"})
			return
		}
		file, handler, err := r.FormFile("image")
		if err != nil {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "An image file is required"})
			return
		}
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(handler.Filename))
		allowedExts := map[string]bool{
			".jpg":  true,
			".jpeg": true,
			".png":  true,
			".webp": true,
		}
		if !allowedExts[ext] {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Image must be JPG/PNG/WEBP"})
			return
		}
		if handler.Size > 5<<20 {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Image must be at most 5MB"})
			return
		}

		// Magic-bytes sniff, the extension alone is not trustworthy.
		buf := make([]byte, 512)
		n, err := file.Read(buf)
		if err != nil && err != io.EOF {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Failed to read image"})
			return
		}
		detected := http.DetectContentType(buf[:n])
		if !strings.HasPrefix(detected, "image/") {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "File is not a valid image"})
			return
		}
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to read image"})
			return
		}

		objectName := fmt.Sprintf("proofs/%s/%s%s", uid, uuid.NewString(), ext)
		// Seven day expiry covers the longest plausible review window.
		url, err := utils.UploadToS3AndPresign(r.Context(), objectName, file, 7*24*3600)
		if err != nil {
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Upload failed, please try again"})
			return
		}

		utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
			Success: true,
			Message: "Image uploaded",
			Data:    map[string]interface{}{"image_url": url, "object_name": objectName},
		})
	}
}
