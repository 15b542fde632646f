package domain

const (
	// LattFileName is the name of the pipeline configuration file.
	LattFileName = "latt.yaml"

	// CacheDirName is the name of the default cache directory.
	CacheDirName = "latt-cache"

	// SidecarSuffix is appended to a payload filename to form its
	// dependency-hash sidecar filename.
	SidecarSuffix = ".deps"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
