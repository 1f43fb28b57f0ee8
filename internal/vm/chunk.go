package vm

// Chunk represents a sequence of bytecode instructions together with the
// constant pool they reference.
type Chunk struct {
	// Code is the bytecode instructions.
	Code []byte

	// Constants is the pool of float64 literals.
	Constants []float64
}

// NewChunk creates a new empty chunk.
func NewChunk() *Chunk {
	return &Chunk{
		Code:      make([]byte, 0, 64),
		Constants: make([]float64, 0, 8),
	}
}

// Write adds a raw byte to the chunk.
func (c *Chunk) Write(b byte) {
	c.Code = append(c.Code, b)
}

// WriteOp writes an opcode to the chunk.
func (c *Chunk) WriteOp(op Opcode) {
	c.Write(byte(op))
}

// AddConstant adds a constant to the pool and returns its index.
func (c *Chunk) AddConstant(v float64) int {
	c.Constants = append(c.Constants, v)
	return len(c.Constants) - 1
}

// WriteConstant writes OP_CONST followed by the constant index.
// The index is 2 bytes, allowing up to 65535 constants.
func (c *Chunk) WriteConstant(v float64) {
	idx := c.AddConstant(v)
	c.WriteOp(OP_CONST)
	c.Write(byte(idx >> 8))
	c.Write(byte(idx))
}

// ReadConstantIndex reads a 2-byte constant index at offset.
func (c *Chunk) ReadConstantIndex(offset int) int {
	return int(c.Code[offset])<<8 | int(c.Code[offset+1])
}

// Len returns the number of bytes in the chunk.
func (c *Chunk) Len() int {
	return len(c.Code)
}
