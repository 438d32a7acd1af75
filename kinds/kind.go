// Package kinds holds the concrete filters over file records.
package kinds

// ObjectKind classifies an indexed object.
type ObjectKind int

const (
	Unknown ObjectKind = iota
	Document
	Folder
	Text
	Package
	Image
	Audio
	Video
	Archive
	Executable
	Alias
	Encrypted
	Key
	Link
	WebPageArchive
	Widget
	Album
	Collection
	Font
	Mesh
	Code
	Database
	Book
	Config
	Dotfile
	Screenshot
	Label
)

var kindNames = []string{
	"Unknown",
	"Document",
	"Folder",
	"Text",
	"Package",
	"Image",
	"Audio",
	"Video",
	"Archive",
	"Executable",
	"Alias",
	"Encrypted",
	"Key",
	"Link",
	"WebPageArchive",
	"Widget",
	"Album",
	"Collection",
	"Font",
	"Mesh",
	"Code",
	"Database",
	"Book",
	"Config",
	"Dotfile",
	"Screenshot",
	"Label",
}

func (kind ObjectKind) String() string {
	if kind < 0 || int(kind) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[kind]
}

// AllKinds lists every kind in value order.
func AllKinds() []ObjectKind {
	kinds := make([]ObjectKind, len(kindNames))
	for i := range kinds {
		kinds[i] = ObjectKind(i)
	}
	return kinds
}

// ParseKind finds a kind by name, case sensitive.
func ParseKind(name string) (ObjectKind, bool) {
	for i, kn := range kindNames {
		if kn == name {
			return ObjectKind(i), true
		}
	}
	return Unknown, false
}
