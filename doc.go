/*
Package artmarket defines the common interfaces that tie the marketplace
packages together: the key-value store contracts, the message and
transaction abstractions, the Condition/Address authorization model and
the context helpers used to carry block information.

The actual marketplace logic lives in the extension packages under x/,
most notably x/market which implements the listing lifecycle and the
atomic swap of payment for asset.

We pass context.Context between the application stack and the handlers.
There exist two functions for every value T we want to support in the
context:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)
*/
package artmarket
