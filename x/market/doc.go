/*
Package market implements an escrow based marketplace for unique assets.

A seller locks an asset into a per listing escrow account and advertises
a price and a time window. Until the window elapses any buyer can execute
an atomic swap of payment for the asset. The seller can always take an
active listing down and reclaim the asset.

Each listing owns its escrow: the asset is held by an address derived
from the listing identifier, so no signer can move it out directly. Only
the market handlers, acting on behalf of a specific listing, release the
asset back to the seller (cancel) or forward it to the buyer (purchase).

A listing is never deleted. It transitions out of the active state
exactly once, to either cancelled or sold, and the terminal record
remains as an audit trail.
*/
package market
