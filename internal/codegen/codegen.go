// codegen creates the DST declarations emitted by the generator. This
// package is the single place where new nodes for the output tree get
// built, along with the whitespace and comment decorations around them.
// Any DST expressions consumed as inputs are defensively cloned before
// being placed in an output node; a node that appears twice in one tree
// causes a runtime panic when the tree is restored.
package codegen
