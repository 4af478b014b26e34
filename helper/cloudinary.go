package helper

import (
	"context"
	"mime/multipart"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("cloudinary init failed: %v", err)
	}
	return cld
}

// UploadAttachment pushes a leave attachment (medical certificate etc.) and
// returns the secure URL.
func UploadAttachment(ctx context.Context, cld *cloudinary.Cloudinary, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	result, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{
		PublicID: "leave-attachments/" + uuid.NewString(),
		Folder:   "leave-attachments",
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}
