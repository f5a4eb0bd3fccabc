package hangman

import "github.com/rocketscienceinc/hangman/internal/entity"

var stages = [MaxAttempts + 1][]entity.BodyPart{
	{},
	{entity.Head},
	{entity.Head, entity.Body},
	{entity.Head, entity.Body, entity.LeftArm, entity.RightArm},
	{entity.Head, entity.Body, entity.LeftArm, entity.RightArm, entity.LeftLeg, entity.RightLeg},
}

// Stage - returns the body parts drawn after wrongAttempts misses. Out of range values clamp.
func Stage(wrongAttempts int) []entity.BodyPart {
	wrongAttempts = min(max(wrongAttempts, 0), MaxAttempts)

	parts := make([]entity.BodyPart, len(stages[wrongAttempts]))
	copy(parts, stages[wrongAttempts])

	return parts
}
