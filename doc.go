// Package inventory provides the types and functions to keep a small stock
// inventory in a local, human-readable JSON file.
//
// The core functionalities include:
//   - Item Model: a closed set of item variants, NonPerishable and Perishable,
//     sharing a name, a quantity and a unit price. Perishable items also carry
//     an expiry date.
//   - Persistence: encoding and decoding items to and from a JSON array where
//     each record is tagged with its "type".
//   - Store: an ordered list of items, addressed by position, that persists
//     itself after every mutation.
//   - Transaction Log: an in-memory, append-only record of every operation
//     performed on a Store.
//
// This package serves as the foundational logic for the `inv` command-line
// tool.
package inventory
