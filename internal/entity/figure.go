package entity

type BodyPart string

const (
	Head     BodyPart = "head"
	Body     BodyPart = "body"
	LeftArm  BodyPart = "left arm"
	RightArm BodyPart = "right arm"
	LeftLeg  BodyPart = "left leg"
	RightLeg BodyPart = "right leg"
)
