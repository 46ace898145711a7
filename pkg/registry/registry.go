// Copyright (c) 2025, the mqstatus authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package registry

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/mqops/mqstatus/pkg/errors"
	"github.com/mqops/mqstatus/pkg/record"
)

// Entry is one queue manager in the registry snapshot. Field names are the
// registry file's wire contract.
type Entry struct {
	Manager string `json:"Q_MANAGER"`
	Status  int    `json:"Q_STATUS"`
}

// Active reports whether the manager was running (primary or standby) when
// the snapshot was taken.
func (e Entry) Active() bool {
	return e.Status == record.StateRunning || e.Status == record.StateStandbyRunning
}

// Snapshot is one immutable registry state. Readers may observe an older
// snapshot than a concurrent writer just produced, never a partial one.
type Snapshot struct {
	Entries []Entry
}

// Load reads the registry snapshot at path.
//
// A missing file is an ErrCodeMissingRegistry error and malformed content is
// an ErrCodeRegistryParse error; both are fatal preconditions for every
// collector that reads the registry.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeMissingRegistry,
				fmt.Sprintf("registry file %s does not exist", path), err)
		}
		return nil, errors.Wrap(errors.ErrCodeMissingRegistry,
			fmt.Sprintf("registry file %s is not readable", path), err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRegistryParse,
			fmt.Sprintf("registry file %s is not well-formed", path), err)
	}

	return &Snapshot{Entries: entries}, nil
}

// Active returns the names of all active managers in snapshot order. A
// well-formed registry with no active managers yields an empty, non-nil
// slice, not an error.
func (s *Snapshot) Active() []string {
	names := make([]string, 0, len(s.Entries))
	for _, e := range s.Entries {
		if e.Active() {
			names = append(names, e.Manager)
		}
	}
	return names
}

// CheckWritable verifies the registry directory exists (creating it if
// needed) and accepts new files. The manager collector calls this before
// issuing any queries so an unwritable target aborts the run up front
// instead of after the expensive part.
func CheckWritable(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeMissingRegistry,
			fmt.Sprintf("registry directory %s is not writable", dir), err)
	}

	probe := filepath.Join(dir, fmt.Sprintf(".%s.%d.%s.probe",
		filepath.Base(path), os.Getpid(), uuid.NewString()))
	f, err := os.OpenFile(probe, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return errors.Wrap(errors.ErrCodeMissingRegistry,
			fmt.Sprintf("registry directory %s is not writable", dir), err)
	}
	_ = f.Close()
	_ = os.Remove(probe)
	return nil
}

// Replace atomically overwrites the registry at path with the given entries.
//
// The snapshot is first written to a uniquely named temporary file in the
// same directory and then renamed into place, so concurrent readers observe
// either the previous snapshot or the new one, never a partial write. There
// is deliberately no lock: eventual consistency between invocations is the
// design choice.
func Replace(path string, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeMissingRegistry,
			fmt.Sprintf("registry directory %s is not writable", dir), err)
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrap(errors.ErrCodeMissingDependency,
			"cannot serialize registry entries", err)
	}

	// Unique per invocation so concurrent independent writers never collide
	// on the temporary name.
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%d.%s.tmp",
		filepath.Base(path), os.Getpid(), uuid.NewString()))

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return errors.Wrap(errors.ErrCodeMissingRegistry,
			fmt.Sprintf("registry directory %s is not writable", dir), err)
	}

	if _, err = f.Write(data); err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeMissingRegistry,
			fmt.Sprintf("cannot write registry snapshot to %s", dir), err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeMissingRegistry,
			fmt.Sprintf("cannot replace registry at %s", path), err)
	}

	slog.Debug("registry snapshot replaced",
		slog.String("path", path),
		slog.Int("entries", len(entries)))
	return nil
}
