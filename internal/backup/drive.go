package backup

import (
	"bytes"
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const (
	DefaultDriveFolder = "fittrack-backup"
	folderMimeType     = "application/vnd.google-apps.folder"
)

// DriveUploader keeps off-site copies of exported backups in a Google
// Drive folder.
type DriveUploader struct {
	service  *drive.Service
	folderID string
}

// NewDriveUploader connects with a service account credentials JSON and
// finds, or creates, the backups folder.
func NewDriveUploader(ctx context.Context, credentialsJSON []byte, folderName string) (*DriveUploader, error) {
	return NewDriveUploaderWithOptions(ctx, folderName, option.WithCredentialsJSON(credentialsJSON))
}

func NewDriveUploaderWithOptions(ctx context.Context, folderName string, opts ...option.ClientOption) (*DriveUploader, error) {
	if folderName == "" {
		folderName = DefaultDriveFolder
	}
	driveService, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve drive client: %w", err)
	}

	folderQuery := fmt.Sprintf("mimeType = '%s' and trashed = false and name = '%s'", folderMimeType, folderName)
	folders, err := driveService.
		Files.List().
		Q(folderQuery).
		Fields("files(id, name)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve files: %w", err)
	}

	u := &DriveUploader{service: driveService}
	switch len(folders.Files) {
	case 0:
		created, err := driveService.
			Files.Create(&drive.File{Name: folderName, MimeType: folderMimeType}).
			Fields("id").
			Context(ctx).
			Do()
		if err != nil {
			return nil, fmt.Errorf("failed to create backups folder: %w", err)
		}
		u.folderID = created.Id
		log.Infof("backups folder %s created: %s", folderName, u.folderID)
	case 1:
		u.folderID = folders.Files[0].Id
	default:
		u.folderID = folders.Files[0].Id
		log.Warnf("found %d backups folders named %s, using %s", len(folders.Files), folderName, u.folderID)
	}

	return u, nil
}

func (u *DriveUploader) FolderID() string {
	return u.folderID
}

// Upload stores data as a new JSON file in the backups folder and returns
// the file id.
func (u *DriveUploader) Upload(ctx context.Context, name string, data []byte) (string, error) {
	f, err := u.service.
		Files.Create(&drive.File{
			Name:     name,
			MimeType: "application/json",
			Parents:  []string{u.folderID},
		}).
		Fields("id, parents").
		Media(bytes.NewReader(data)).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", name, err)
	}
	log.Debugf("backup %s uploaded to drive: %s", name, f.Id)
	return f.Id, nil
}
