package domain

import (
	"path"
	"strings"
	"time"
)

// GpPractice is a general practice in the program's engagement directory.
type GpPractice struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
	Notes   string `json:"notes"`
	AuditFields
}

// ProgramResource describes a document in the resource library. The file
// itself lives in external object storage; only its location is kept here.
type ProgramResource struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	DateAdded   time.Time `json:"dateAdded"`
	FileURL     string    `json:"fileUrl,omitempty"`
	FileName    string    `json:"fileName,omitempty"`
	FileSize    *int64    `json:"fileSize,omitempty"`
	FileType    string    `json:"fileType,omitempty"` // MIME type
	StoragePath string    `json:"storagePath,omitempty"`
}

// ResourceCategories are the library sections, in display order.
var ResourceCategories = []string{
	"Program Work/Action Plan",
	"Policies & Procedures",
	"Governance - Pathway Agreement i.e. MOUs and SLAs",
}

// MaxResourceFileSize is the largest file the object store accepts.
const MaxResourceFileSize = 50 * 1024 * 1024

var resourceExtensions = map[string]bool{
	"pdf": true, "doc": true, "docx": true, "xls": true, "xlsx": true,
	"jpg": true, "jpeg": true, "png": true, "gif": true, "mp4": true,
	"txt": true, "csv": true,
}

// IsResourceCategory reports whether category is a library section.
func IsResourceCategory(category string) bool {
	for _, c := range ResourceCategories {
		if c == category {
			return true
		}
	}
	return false
}

// IsAllowedResourceFile reports whether fileName has an extension the library
// accepts.
func IsAllowedResourceFile(fileName string) bool {
	return resourceExtensions[ResourceExtension(fileName)]
}

// ResourceExtension returns the lower-cased extension of fileName without
// the dot.
func ResourceExtension(fileName string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(fileName), "."))
}

// ResourceTypeLabel derives the display type from a MIME type, for example
// "application/pdf" gives "PDF". Unknown types are "FILE".
func ResourceTypeLabel(mimeType string) string {
	_, sub, ok := strings.Cut(mimeType, "/")
	if !ok || sub == "" {
		return "FILE"
	}
	return strings.ToUpper(sub)
}

// LocalArea links a local government area to its community social atlas.
type LocalArea struct {
	Name     string `json:"name"`
	Location string `json:"location"` // Matching service-delivery site
	AtlasURL string `json:"atlasUrl"`
}

// LocalAreas are the council areas served by the program, one per site.
var LocalAreas = []LocalArea{
	{Name: "City of Wanneroo", Location: "Wanneroo", AtlasURL: "https://atlas.id.com.au/wanneroo"},
	{Name: "City of Swan", Location: "Swan", AtlasURL: "https://atlas.id.com.au/swan"},
	{Name: "City of Stirling", Location: "Stirling", AtlasURL: "https://atlas.id.com.au/stirling/maps/social-atlas?id=235&z=11&lat=-31.87&lng=115.80"},
	{Name: "City of Canning", Location: "Canning", AtlasURL: "https://atlas.id.com.au/canning/maps/social-atlas?id=235&z=11&lat=-32.02&lng=115.93"},
	{Name: "City of Gosnells", Location: "Gosnells", AtlasURL: "https://atlas.id.com.au/gosnells/maps/social-atlas?id=235&z=11&lat=-32.07&lng=115.98"},
	{Name: "City of Mandurah", Location: "Mandurah", AtlasURL: "https://atlas.id.com.au/mandurah/maps/social-atlas?id=235&z=10&lat=-32.55&lng=115.75"},
}
