package avatar

import (
	"fmt"
	"path"
	"strings"

	"github.com/fairfinder/fair-finder/internal/errdef"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// storedName derives the name an upload is stored under: the slugged original name followed by a
// random suffix so uploads never overwrite each other.
func storedName(userID uint, original string) (string, error) {
	base := path.Base(strings.ReplaceAll(original, `\`, "/"))
	ext := strings.ToLower(path.Ext(base))
	if !allowedExtensions[ext] {
		return "", errdef.NewBadRequest("File type not allowed: %q", original)
	}

	stem := slug.Make(strings.TrimSuffix(base, path.Ext(base)))
	if stem == "" {
		stem = "avatar"
	}

	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%d-%s-%s%s", userID, stem, suffix, ext), nil
}

// validName reports whether name can be looked up in a Store.
func validName(name string) bool {
	return name != "" &&
		name != "." &&
		name != ".." &&
		!strings.ContainsAny(name, `/\`) &&
		allowedExtensions[strings.ToLower(path.Ext(name))]
}
