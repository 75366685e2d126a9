package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/managely-hr/hr-backend-go/internal/pkg/storage"
	"golang.org/x/image/draw"
)

// MaxAvatarSide bounds the longer edge of a stored avatar.
const MaxAvatarSide = 512

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrInvalidImage        = errors.New("file is not a valid image")
)

var (
	imageExts    = []string{".jpg", ".jpeg", ".png"}
	documentExts = []string{".pdf", ".doc", ".docx", ".xls", ".xlsx", ".txt", ".jpg", ".jpeg", ".png"}
	payslipExts  = []string{".pdf", ".txt"}
)

type FileService interface {
	// UploadAvatar decodes, downsizes and stores an employee photo.
	UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)
	UploadDocument(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)
	UploadPayslip(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)

	Open(ctx context.Context, path string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, path string) error
	URL(path string) string
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadAvatar uploads employee avatar
func (s *fileServiceImpl) UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(imageExts, ext) {
		return "", fmt.Errorf("%w: only jpg, jpeg, png allowed", ErrUnsupportedFileType)
	}

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	img = fitWithin(img, MaxAvatarSide)

	var buf bytes.Buffer
	contentType := "image/jpeg"
	if ext == ".png" {
		contentType = "image/png"
		err = png.Encode(&buf, img)
	} else {
		ext = ".jpg"
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode avatar: %w", err)
	}

	key := path.Join("avatars", employeeID, uuid.NewString()+ext)
	uploadedPath, err := s.storage.Upload(ctx, &buf, key, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}
	return uploadedPath, nil
}

// UploadDocument uploads employee document
func (s *fileServiceImpl) UploadDocument(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	return s.upload(ctx, "documents", employeeID, file, filename, documentExts)
}

func (s *fileServiceImpl) UploadPayslip(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	return s.upload(ctx, "payslips", employeeID, file, filename, payslipExts)
}

func (s *fileServiceImpl) upload(ctx context.Context, folder, employeeID string, file io.Reader, filename string, allowed []string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(allowed, ext) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)
	}

	key := path.Join(folder, employeeID, uuid.NewString()+ext)
	uploadedPath, err := s.storage.Upload(ctx, file, key, ContentType(filename))
	if err != nil {
		return "", fmt.Errorf("failed to upload %s file: %w", folder, err)
	}
	return uploadedPath, nil
}

func (s *fileServiceImpl) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	return s.storage.Download(ctx, path)
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

func (s *fileServiceImpl) URL(path string) string {
	return s.storage.URL(path)
}

// ContentType guesses a MIME type from the file extension.
func ContentType(filename string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// fitWithin scales img down, keeping its aspect ratio, so neither side
// exceeds maxSide. Smaller images are returned untouched.
func fitWithin(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSide && h <= maxSide {
		return img
	}

	if w >= h {
		h = max(1, h*maxSide/w)
		w = maxSide
	} else {
		w = max(1, w*maxSide/h)
		h = maxSide
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
