// Package notation parses and evaluates dice expressions such as "2d6+3".
//
// An expression is a "+"-separated list of terms. A term containing a
// lowercase "d" is a dice term ("NdM": roll N dice with M faces each);
// any other term is a signed integer modifier. Evaluation rolls every die
// independently from a shared random source and sums all terms.
//
// Only addition is supported: "-2d6" is a dice term with a non-positive
// count, not a subtraction, and is rejected.
package notation
