// Package chunker divides source files into bounded chunks for embedding
// and search.
//
// The chunker composes the pipeline Classifier -> Reader -> Detector ->
// Assembler: the path picks a language, the file is read verbatim, the
// detector proposes logical-unit line ranges, and the assembler enforces
// the size bound while attaching provenance metadata.
//
// # Basic Usage
//
//	c := chunker.New()
//	chunks, err := c.ChunkFile("/path/to/file.py")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, chunk := range chunks {
//	    fmt.Printf("%s lines %d-%d (%d tokens)\n",
//	        chunk.Citation(), chunk.LineStart, chunk.LineEnd, chunk.TokenCount)
//	}
//
// # Sizing
//
// No chunk covers more than the configured line bound (default 400).
// Oversized boundaries are subdivided into consecutive windows; windows
// containing only whitespace are discarded, so emitted chunks are never
// empty.
//
// # Determinism
//
// Chunking is pure once the file is read: re-chunking an unchanged file
// yields byte-identical content and line ranges on every run, which is
// what lets the downstream indexer dedup by content hash.
package chunker
