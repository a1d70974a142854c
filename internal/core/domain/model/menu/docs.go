// Package menu provides the food item composition model for the point-of-sale
// system. A FoodItem is built from a base dish plus an ordered set of add-ons
// drawn from a closed catalog; its cost and preparation time are always the
// fold of the base values with every applied add-on's deltas.
//
// The package includes:
//   - AddOn: an immutable, named, priced, timed modifier from the closed catalog
//   - BaseDish: a dish from the fixed menu with its own cost and preparation time
//   - FoodItem: the composed result, created via Compose or StandaloneAddOn
//
// Composition is a pure value construction with no side effects. The order of
// add-ons affects only the textual description, never the numeric totals.
package menu
