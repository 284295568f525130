// Package substance provides the catalog entity for compoundable ingredients.
//
// Key business rules:
//   - Substances are created and edited only by moderators
//   - Deletion is a soft archive: the substance leaves listings but stays
//     referenceable by historical medicine compositions
//   - Only active substances may be added to new draft medicines
package substance
