/*
Package errors implements custom error interfaces for the marketplace.

Error instances are categorized by a root error. All root errors are
registered in this package with a unique code. Extensions declare
their own root errors using the Register function.

Create errors by wrapping a root error with a description:

  errors.Wrap(errors.ErrNotFound, "listing")

and test for a category with Is:

  errors.ErrNotFound.Is(err)
*/
package errors
