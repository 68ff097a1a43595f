// Package descriptor translates and renders JVM-style type descriptors.
//
// A descriptor encodes a field type ("I", "[Lnet/Foo;") or a method
// signature ("(ILnet/Foo;)V"). Only the internal class names between 'L'
// and ';' are ever substituted; primitive codes, array markers and method
// punctuation are copied verbatim.
//
// Key functions:
//   - Remap: substitutes class names through a Resolver
//   - LocalizeFieldDesc: renders a field or return descriptor for display
//   - Validate: checks descriptor syntax
package descriptor
