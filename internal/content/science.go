package content

// Science returns the true/false science bank. Each card is normalized
// into an Item with a single True/False question so the deck and quiz
// engines treat it like any other content.
func Science() *Bank {
	return NewBank("science", scienceItems)
}

// card builds a science item. The statement becomes the body and the
// prompt; truth picks the correct index out of the fixed True/False pair.
func card(id string, age AgeTag, statement string, isTrue bool, fact string) Item {
	correct := 1
	if isTrue {
		correct = 0
	}
	return Item{
		ID:     id,
		AgeTag: age,
		Body:   statement,
		Fact:   fact,
		Questions: []Question{
			{Prompt: statement, Choices: []string{"True", "False"}, CorrectIndex: correct},
		},
	}
}

var scienceItems = []Item{
	card("c1", Age6to8, "Plants need sunlight to grow.", true, "Plants make food using sunlight."),
	card("c2", Age6to8, "A whale is a fish.", false, "Whales are mammals and breathe air."),
	card("c3", Age6to8, "Water can be solid, liquid, or gas.", true, "Ice, water, and steam are all water!"),
	card("c4", Age6to8, "The Moon makes its own light.", false, "The Moon reflects sunlight like a mirror."),
	card("c5", Age6to8, "Birds have feathers.", true, "Feathers help birds fly and stay warm."),
	card("c6", Age6to8, "Spiders have six legs.", false, "Spiders have eight legs!"),
	card("c7", Age6to8, "Sound travels through air.", true, "Sound is made by vibrations we can hear."),
	card("c8", Age6to8, "All rocks are soft like pillows.", false, "Most rocks are hard and strong."),
	card("c9", Age6to8, "A caterpillar can become a butterfly.", true, "That change is called metamorphosis."),
	card("c10", Age6to8, "The Sun is a planet.", false, "The Sun is a star!"),
	card("c11", Age8to10, "Lightning is seen before thunder because light travels faster than sound.", true, "That's why you see the flash before you hear the boom."),
	card("c12", Age8to10, "Earth's gravity pulls objects toward the center of Earth.", true, "Gravity keeps us on the ground."),
	card("c13", Age8to10, "Humans have 2 hearts.", false, "Humans have 1 heart. Octopuses have 3!"),
	card("c14", Age8to10, "Some materials are magnetic, like iron.", true, "Magnets attract some metals."),
	card("c15", Age8to10, "A day on Venus is longer than a year on Venus.", true, "Venus spins very slowly compared to its orbit."),
	card("c16", Age8to10, "All planets have the same number of moons.", false, "Some have many moons, some have none."),
	card("c17", Age8to10, "Evaporation turns liquid water into water vapor.", true, "That's part of the water cycle."),
	card("c18", Age8to10, "Friction can make things slow down.", true, "Friction happens when surfaces rub together."),
	card("c19", Age8to10, "Dinosaurs and humans lived at the same time.", false, "Dinosaurs lived millions of years before humans."),
	card("c20", Age8to10, "Some volcano rocks form when lava cools quickly.", true, "Fast cooling can make rocks like obsidian."),
}
