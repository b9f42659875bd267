package storage

import (
	"fmt"
	"log"
	"os"
	"path"
	"time"

	"github.com/bytedance/sonic"
)

const configFile = "schedule-config.json"

// DiskConfigStorage keeps the snapshot as one JSON file per country
// folder. Writes go through a temp file and rename so a crashed save
// never leaves a half-written snapshot behind.
type DiskConfigStorage struct {
	Country    string
	RootFolder string
}

func NewDiskConfigStorage(country, rootFolder string) *DiskConfigStorage {
	return &DiskConfigStorage{
		Country:    country,
		RootFolder: rootFolder,
	}
}

func (ds *DiskConfigStorage) getFileName(name string) (string, string) {
	fileName := path.Join(ds.RootFolder, ds.Country, name)
	tmpFileName := fileName + ".tmp-" + fmt.Sprintf("%d", time.Now().UnixMilli())
	return fileName, tmpFileName
}

func (ds *DiskConfigStorage) Load() (*ScheduleConfig, error) {
	fileName, _ := ds.getFileName(configFile)
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	cfg := &ScheduleConfig{}
	if err := sonic.ConfigDefault.NewDecoder(file).Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (ds *DiskConfigStorage) Save(cfg *ScheduleConfig) error {
	fileName, tmpFileName := ds.getFileName(configFile)
	if err := os.MkdirAll(path.Dir(fileName), 0755); err != nil {
		return err
	}
	file, err := os.Create(tmpFileName)
	if err != nil {
		return err
	}
	if err := sonic.ConfigDefault.NewEncoder(file).Encode(cfg); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpFileName, fileName); err != nil {
		log.Printf("Failed to replace snapshot %s: %v", fileName, err)
		return err
	}
	return nil
}
