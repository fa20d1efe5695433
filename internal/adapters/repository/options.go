package repository

// PoolOption applies a configuration option to the PoolStore.
type PoolOption func(*PoolStore)

// WithBackupPath enables pre-overwrite backups at the given path.
func WithBackupPath(path string) PoolOption {
	return func(s *PoolStore) {
		s.backupPath = path
	}
}
