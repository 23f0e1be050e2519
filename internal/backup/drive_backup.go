package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/2beens/liftlog/internal/workouts"
)

const (
	rootBackupsFolderName = "liftlog-workouts-backup"
	folderMimeType        = "application/vnd.google-apps.folder"
	workoutsFileChunkSize = 200 // number of workouts in one backup file
)

type workoutsSource interface {
	ListCreatedSince(ctx context.Context, since time.Time) ([]workouts.Workout, error)
}

// GoogleDriveBackupService exports workouts as JSON files into a google drive folder.
// Each run only exports workouts created after the newest existing backup file.
type GoogleDriveBackupService struct {
	source          workoutsSource
	service         *drive.Service
	backupsFolderId string
	shareWith       string
}

func NewGoogleDriveBackupService(
	ctx context.Context,
	credentialsJson []byte,
	source workoutsSource,
	shareWith string,
) (*GoogleDriveBackupService, error) {
	driveService, err := drive.NewService(ctx, option.WithCredentialsJSON(credentialsJson))
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve drive client: %w", err)
	}

	s := &GoogleDriveBackupService{
		source:    source,
		service:   driveService,
		shareWith: shareWith,
	}

	rootFolderQuery := fmt.Sprintf("mimeType = '%s' and trashed = false and name = '%s'", folderMimeType, rootBackupsFolderName)
	backupFolders, err := driveService.
		Files.List().
		Q(rootFolderQuery).
		Fields("files(id, name)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve files: %w", err)
	}

	switch len(backupFolders.Files) {
	case 0:
		log.Println("root backups folder not found, recreating ...")
		s.backupsFolderId, err = s.createRootBackupsFolder(ctx)
		if err != nil {
			return nil, fmt.Errorf("create root backups folder: %w", err)
		}
		log.Printf("new root backups folder created: %s", s.backupsFolderId)
	case 1:
		s.backupsFolderId = backupFolders.Files[0].Id
		log.Printf("root backups folder found: %s", s.backupsFolderId)
	default:
		s.backupsFolderId = backupFolders.Files[0].Id
		log.Warnf("found %d root backups folders, will take the first one: %s", len(backupFolders.Files), s.backupsFolderId)
	}

	return s, nil
}

// Reinit drops the whole backups folder and exports everything again.
func (s *GoogleDriveBackupService) Reinit(ctx context.Context, baseTime time.Time) (int, error) {
	log.Println("workouts backup reinit starting ...")

	if err := s.service.Files.Delete(s.backupsFolderId).Context(ctx).Do(); err != nil {
		return 0, fmt.Errorf("delete backups folder: %w", err)
	}

	backupsFolderId, err := s.createRootBackupsFolder(ctx)
	if err != nil {
		return 0, fmt.Errorf("create root backups folder: %w", err)
	}
	log.Printf("new root backups folder created: %s", backupsFolderId)
	s.backupsFolderId = backupsFolderId

	return s.DoBackup(ctx, baseTime)
}

// DoBackup exports the workouts created since the last backup and returns how many were exported.
func (s *GoogleDriveBackupService) DoBackup(ctx context.Context, baseTime time.Time) (int, error) {
	currentBackupFiles, err := s.backupFiles(ctx)
	if err != nil {
		return 0, err
	}

	baseFileName := fmt.Sprintf("workouts-%s", baseTime.Format("2006-01-02"))
	if len(currentBackupFiles) == 0 {
		log.Println("backups empty, creating initial backup ...")
		baseFileName = fmt.Sprintf("initial-%s", baseTime.Format("2006-01-02"))
	}

	lastCreatedAt := latestCreatedTime(currentBackupFiles)
	workoutsToBackup, err := s.source.ListCreatedSince(ctx, lastCreatedAt)
	if err != nil {
		return 0, fmt.Errorf("get next backup workouts: %w", err)
	}

	if len(workoutsToBackup) == 0 {
		log.Println("no new workouts to backup, done")
		return 0, nil
	}

	log.Printf("backing up %d workouts since %v", len(workoutsToBackup), lastCreatedAt)

	nextFileName := nextBackupFileName(baseFileName, currentBackupFiles)
	if err := s.backupWorkouts(ctx, workoutsToBackup, nextFileName); err != nil {
		return 0, fmt.Errorf("backup workouts: %w", err)
	}

	log.Printf("next backup since %v successfully saved: %s", lastCreatedAt, nextFileName)

	return len(workoutsToBackup), nil
}

func (s *GoogleDriveBackupService) createRootBackupsFolder(ctx context.Context) (string, error) {
	folder, err := s.service.
		Files.Create(&drive.File{
			Name:     rootBackupsFolderName,
			MimeType: folderMimeType,
		}).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", err
	}

	if err := s.share(ctx, folder.Id); err != nil {
		return folder.Id, fmt.Errorf("share root backup folder: %w", err)
	}

	return folder.Id, nil
}

func (s *GoogleDriveBackupService) backupWorkouts(ctx context.Context, toBackup []workouts.Workout, baseFileName string) error {
	for i, chunk := range chunkWorkouts(toBackup, workoutsFileChunkSize) {
		nextFileName := fmt.Sprintf("%s_%d.json", baseFileName, i+1)

		chunkJson, err := json.Marshal(chunk)
		if err != nil {
			return fmt.Errorf("%s: marshal workouts: %w", nextFileName, err)
		}

		log.Printf("%s: creating file with %d workouts on google drive ...", nextFileName, len(chunk))
		backupFile, err := s.service.
			Files.Create(&drive.File{
				Name:     nextFileName,
				MimeType: "application/json",
				Parents:  []string{s.backupsFolderId},
			}).
			Fields("id, parents").
			Media(bytes.NewReader(chunkJson)).
			Context(ctx).
			Do()
		if err != nil {
			return fmt.Errorf("%s: create workouts backup file: %w", nextFileName, err)
		}

		if err := s.share(ctx, backupFile.Id); err != nil {
			return fmt.Errorf("%s: %w", nextFileName, err)
		}

		log.Printf("%s: backup file saved: %s", nextFileName, backupFile.Id)
	}

	return nil
}

func (s *GoogleDriveBackupService) share(ctx context.Context, fileId string) error {
	if s.shareWith == "" {
		return nil
	}

	permission, err := s.service.Permissions.
		Create(fileId, &drive.Permission{
			EmailAddress: s.shareWith,
			Type:         "user",
			Role:         "reader",
		}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("create permission: %w", err)
	}

	log.Debugf("permission %s created for %s", permission.Id, fileId)
	return nil
}

func (s *GoogleDriveBackupService) backupFiles(ctx context.Context) ([]*drive.File, error) {
	query := fmt.Sprintf("'%s' in parents and mimeType != '%s' and trashed = false", s.backupsFolderId, folderMimeType)
	backups, err := s.service.
		Files.List().
		Q(query).
		Fields("files(id, name, createdTime)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list backup files: %w", err)
	}

	return backups.Files, nil
}

// latestCreatedTime returns the creation time of the newest file, zero time when there are none.
func latestCreatedTime(files []*drive.File) time.Time {
	latest := time.Time{}
	for _, file := range files {
		createdAt, err := time.Parse(time.RFC3339, file.CreatedTime)
		if err != nil {
			log.Errorf("parse created time of %s: %s", file.Name, err)
			continue
		}
		if createdAt.After(latest) {
			latest = createdAt
		}
	}
	return latest
}

// nextBackupFileName appends a counter to base until no existing file starts with it.
func nextBackupFileName(base string, files []*drive.File) string {
	taken := func(name string) bool {
		for _, file := range files {
			if file.Name == name+"_1.json" {
				return true
			}
		}
		return false
	}

	name := base
	for counter := 2; taken(name); counter++ {
		name = fmt.Sprintf("%s-%d", base, counter)
	}
	return name
}

func chunkWorkouts(all []workouts.Workout, size int) [][]workouts.Workout {
	var chunks [][]workouts.Workout
	for from := 0; from < len(all); from += size {
		to := from + size
		if to > len(all) {
			to = len(all)
		}
		chunks = append(chunks, all[from:to])
	}
	return chunks
}
