// Package catalog implements the integration layer for the external catalog provider.
//
// # Credential Lifecycle
//
// [Credentials] owns the single process-wide bearer token slot. A statically
// configured token is used as-is; otherwise a client-credentials exchange runs
// on first use and the result is cached until [Credentials.Invalidate] clears
// it. Invalidation is used exactly once per failed provider call, bounding
// auth retries to one extra attempt.
//
// # Gateway
//
// [Gateway] issues provider queries built by [Query] and applies the failure
// policy: 401/403 triggers credential invalidation and one retry, 400 triggers
// one retry with the relaxed fallback query, and everything else degrades.
// The exported operations ([Gateway.Browse], [Gateway.Detail],
// [Gateway.TopPool]) are total: they log failures and return empty results or
// placeholder records instead of errors, so a deployment without provider
// access keeps serving.
//
// # Seeding
//
// [Seeder] populates a brand-new user's library deterministically: a rolling
// hash of the username picks a rotation offset into the seeding pool (the live
// top-pool when reachable, the fixed placeholder pool otherwise), and the
// first selections are written through the [LibraryStore] collaborator.
package catalog
