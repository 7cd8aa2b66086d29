package uploads

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"craftnest/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
)

var (
	uploadDir = "static/uploads"
	thumbDir  = "static/uploads/thumb"
)

const (
	maxUploadMem  = 10 << 20 // 10 MB
	maxBatchFiles = 10
	thumbWidth    = 300
)

// store decodes one uploaded image, writes it and a resized thumbnail under
// the upload directories, and returns the public paths.
func store(src multipart.File, filename, userID string) (utils.M, error) {
	img, err := imaging.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}

	ext := strings.ToLower(filepath.Ext(utils.SanitizeFilename(filename)))
	if ext == "" {
		ext = ".jpg"
	}
	name := fmt.Sprintf("%s-%s%s", userID, utils.GenerateRandomString(10), ext)
	dstPath := filepath.Join(uploadDir, name)

	if err := imaging.Save(img, dstPath); err != nil {
		return nil, fmt.Errorf("save %s: %w", filename, err)
	}

	entry := utils.M{"url": "/" + filepath.ToSlash(dstPath)}

	thumbPath := filepath.Join(thumbDir, name)
	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, thumbPath); err != nil {
		// Thumbnail failure should not lose the original upload.
		log.Printf("uploads: thumbnail for %s failed: %v", name, err)
		os.Remove(thumbPath)
	} else {
		entry["thumbnailUrl"] = "/" + filepath.ToSlash(thumbPath)
	}

	return entry, nil
}

func ensureDirs(w http.ResponseWriter) bool {
	if err := utils.EnsureDir(uploadDir); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to prepare upload directory")
		return false
	}
	if err := utils.EnsureDir(thumbDir); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to prepare upload directory")
		return false
	}
	return true
}

// POST /api/uploads — single image in field "image".
func UploadImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	if err := r.ParseMultipartForm(maxUploadMem); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Image file is required")
		return
	}
	defer file.Close()

	if !utils.ValidateImageFileType(w, header) {
		return
	}
	if !ensureDirs(w) {
		return
	}

	entry, err := store(file, header.Filename, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Could not process image")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, entry)
}

// POST /api/uploads/multiple — up to 10 images in field "images".
func UploadImages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	if err := r.ParseMultipartForm(maxUploadMem); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "At least one image file is required")
		return
	}
	if len(files) > maxBatchFiles {
		utils.RespondWithError(w, http.StatusBadRequest, fmt.Sprintf("Cannot upload more than %d images at once", maxBatchFiles))
		return
	}

	for _, header := range files {
		if !utils.SupportedImageTypes[header.Header.Get("Content-Type")] {
			utils.RespondWithError(w, http.StatusBadRequest, fmt.Sprintf("Unsupported file type: %s", header.Filename))
			return
		}
	}
	if !ensureDirs(w) {
		return
	}

	entries := make([]utils.M, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, fmt.Sprintf("Could not read %s", header.Filename))
			return
		}
		entry, err := store(file, header.Filename, userID)
		file.Close()
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, fmt.Sprintf("Could not process %s", header.Filename))
			return
		}
		entries = append(entries, entry)
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"files": entries})
}
