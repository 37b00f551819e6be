// Package builder constructs enveloping vertex algebras declaratively:
// from YAML documents, from in-memory Config values, or from the named
// catalog (virasoro, free-boson, neveu-schwarz, affine-sl2).
//
// The YAML schema mirrors the structure-constant model one to one.
// Rational numbers are written as strings ("2", "-1/2") so no precision
// is lost in transit:
//
//	name: virasoro
//	generators:
//	  - name: L
//	    weight: "2"
//	  - name: C
//	    weight: "0"
//	    central: true
//	brackets:
//	  - left: L
//	    right: L
//	    poles:
//	      - pole: 0
//	        terms: [{gen: L, deriv: 1, coef: "1"}]
//	      - pole: 1
//	        terms: [{gen: L, deriv: 0, coef: "2"}]
//	      - pole: 3
//	        terms: [{gen: C, deriv: 0, coef: "1/2"}]
//	central_parameters:
//	  C: "1/2"
//
// A skew_complete list derives missing bracket orientations by
// skew-symmetry, so symmetric tables only need one direction written
// out.
package builder
