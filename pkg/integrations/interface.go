package integrations

// Builder turns fetched comic pages into a book file.
type Builder interface {
	CreateEPub(book Book, pages []Page) (string, error)
}

// Optimizer rewrites a page image for a target reader.
type Optimizer interface {
	Optimize(content []byte) (out []byte, ext string, err error)
}
