package usecase

// SelfieReader lists and resolves stored uploads.
type SelfieReader interface {
	List() ([]string, error)
	Locate(name string) (string, error)
}

// SelfieUseCase exposes read access to the upload directory.
type SelfieUseCase struct {
	store SelfieReader
}

// NewSelfieUseCase constructs SelfieUseCase.
func NewSelfieUseCase(store SelfieReader) *SelfieUseCase {
	return &SelfieUseCase{store: store}
}

// Filenames returns the current directory listing.
func (u *SelfieUseCase) Filenames() ([]string, error) {
	return u.store.List()
}

// Path returns the on-disk location of name, or a not-found / invalid-name error.
func (u *SelfieUseCase) Path(name string) (string, error) {
	return u.store.Locate(name)
}
