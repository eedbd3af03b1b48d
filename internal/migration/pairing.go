package migration

import "github.com/temirov/mongo-migrate/internal/synthesis"

// PairCollections matches destination collections to origin collections by position.
// Origin collections without a destination counterpart are imported under their own name;
// destination entries beyond the origin list are ignored.
func PairCollections(originCollections []string, destinationCollections []string) []synthesis.CollectionPair {
	pairs := make([]synthesis.CollectionPair, 0, len(originCollections))
	for collectionIndex, originCollection := range originCollections {
		pair := synthesis.CollectionPair{Origin: originCollection}
		if collectionIndex < len(destinationCollections) {
			pair.Destination = destinationCollections[collectionIndex]
		}
		pairs = append(pairs, pair)
	}
	return pairs
}
