package storage

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// StartBackgroundWorkers starts the background save worker
func (s *SnapshotStore) StartBackgroundWorkers() {
	if !s.backgroundSave {
		return
	}

	s.backgroundWg.Add(1)
	go func() {
		defer s.backgroundWg.Done()
		ticker := time.NewTicker(s.saveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := s.saveIfDirty(); err != nil {
					log.Warnf("background save of %s failed: %v", s.filename, err)
				}
			case <-s.stopChan:
				return
			}
		}
	}()
}

// StopBackgroundWorkers stops background workers
func (s *SnapshotStore) StopBackgroundWorkers() {
	select {
	case <-s.stopChan:
		// Channel already closed, do nothing
	default:
		close(s.stopChan)
	}
	s.backgroundWg.Wait()
}
