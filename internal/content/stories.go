package content

// Stories returns the reading comprehension bank. Each story carries two
// short questions answered after reading the text.
func Stories() *Bank {
	return NewBank("reading", storyItems)
}

var storyItems = []Item{
	{
		ID:     "s1",
		AgeTag: Age6to8,
		Title:  "Mila and the Lost Puppy",
		Body: "Mila heard a tiny whimper behind a bush. She found a small puppy with a red collar. " +
			"Mila gave it water and read the tag: Buddy. She and Buddy walked door to door until they found Buddy's home. " +
			"A boy opened the door and smiled. Mila felt proud and happy.",
		Questions: []Question{
			{Prompt: "What did Mila hear?", Choices: []string{"A tiny whimper", "A loud roar", "A song", "A bell"}, CorrectIndex: 0},
			{Prompt: "What was the puppy's name?", Choices: []string{"Buddy", "Sunny", "Max", "Coco"}, CorrectIndex: 0},
		},
	},
	{
		ID:     "s2",
		AgeTag: Age6to8,
		Title:  "The Blue Kite",
		Body: "Sam flew a bright blue kite at the park with his sister, Lina. The kite danced in the wind. " +
			"The wind got stronger and the string slipped! Sam grabbed it and tied a small knot. \"Teamwork!\" Lina laughed.",
		Questions: []Question{
			{Prompt: "Where did Sam fly the kite?", Choices: []string{"Park", "School", "Store", "Kitchen"}, CorrectIndex: 0},
			{Prompt: "What problem happened?", Choices: []string{"String slipped", "Kite turned green", "Rain fell", "No wind"}, CorrectIndex: 0},
		},
	},
	{
		ID:     "s3",
		AgeTag: Age6to8,
		Title:  "Tariq's Tiny Train",
		Body: "Tariq built a toy train track on the floor. The train kept stopping at one corner. Tariq looked closely and saw a loose piece. " +
			"He clicked it in place. The train zoomed around the track. Tariq smiled: \"Fixed!\"",
		Questions: []Question{
			{Prompt: "What was Tariq building?", Choices: []string{"A train track", "A cake", "A robot", "A boat"}, CorrectIndex: 0},
			{Prompt: "Why did the train stop?", Choices: []string{"Loose piece", "Too much wind", "No batteries", "A cat ate it"}, CorrectIndex: 0},
		},
	},
	{
		ID:     "s4",
		AgeTag: Age6to8,
		Title:  "The Sticker Surprise",
		Body: "Lina cleaned her room and found a lost sticker sheet under the bed. She shared stickers with her little brother. " +
			"He made a funny sticker face on a notebook. They both laughed.",
		Questions: []Question{
			{Prompt: "Where did Lina find the stickers?", Choices: []string{"Under the bed", "In the fridge", "In a shoe", "In a tree"}, CorrectIndex: 0},
			{Prompt: "What did Lina do with the stickers?", Choices: []string{"Shared them", "Threw them away", "Ate them", "Hid them"}, CorrectIndex: 0},
		},
	},
	{
		ID:     "s5",
		AgeTag: Age6to8,
		Title:  "Nico and the Big Bubbles",
		Body: "Nico dipped a bubble wand into soapy water. He blew gently and made a bubble as big as his head. " +
			"The bubble floated, shimmered, and popped with a tiny 'plink'. Nico cheered.",
		Questions: []Question{
			{Prompt: "What did Nico use?", Choices: []string{"A bubble wand", "A pencil", "A spoon", "A shoe"}, CorrectIndex: 0},
			{Prompt: "How did the bubble sound when it popped?", Choices: []string{"Plink", "Boom", "Roar", "Ring"}, CorrectIndex: 0},
		},
	},
	{
		ID:     "s6",
		AgeTag: Age6to8,
		Title:  "The Snack Swap",
		Body: "Sara had apple slices. Omar had crackers. They decided to swap half and try something new. " +
			"Sara liked the crunch. Omar liked the sweet. They both said, \"Good choice!\"",
		Questions: []Question{
			{Prompt: "What snack did Sara have?", Choices: []string{"Apple slices", "Pizza", "Candy", "Soup"}, CorrectIndex: 0},
			{Prompt: "What did they do?", Choices: []string{"Swapped half", "Argued", "Lost lunch", "Ran away"}, CorrectIndex: 0},
		},
	},
	{
		ID:     "s7",
		AgeTag: Age6to8,
		Title:  "The Quiet Turtle",
		Body: "At the pond, Maya saw a turtle resting on a rock. She stayed quiet and watched from far away. " +
			"The turtle slowly slid into the water. Maya whispered, \"Bye, turtle.\"",
		Questions: []Question{
			{Prompt: "Where was the turtle?", Choices: []string{"On a rock", "In a tree", "On a swing", "In a box"}, CorrectIndex: 0},
			{Prompt: "What did Maya do?", Choices: []string{"Stayed quiet", "Chased it", "Threw stones", "Yelled"}, CorrectIndex: 0},
		},
	},
	{
		ID:     "s8",
		AgeTag: Age6to8,
		Title:  "A Button for Grandpa",
		Body: "Grandpa's shirt button popped off. Aya found a small sewing kit. Grandpa showed her how to thread the needle. " +
			"Aya sewed the button back on. Grandpa smiled: \"Thank you, helper.\"",
		Questions: []Question{
			{Prompt: "What broke on Grandpa's shirt?", Choices: []string{"A button", "A zipper", "A pocket", "A sleeve"}, CorrectIndex: 0},
			{Prompt: "How did Aya help?", Choices: []string{"Sewed it on", "Painted it", "Cut it", "Forgot it"}, CorrectIndex: 0},
		},
	},
	{
		ID:     "s9",
		AgeTag: Age6to8,
		Title:  "The Missing Crayon",
		Body: "Rami wanted the green crayon to draw grass. It was missing! He checked the box, then the desk, then the floor. " +
			"He found it under a paper. \"There you are!\" Rami said.",
		Questions: []Question{
			{Prompt: "What color crayon was missing?", Choices: []string{"Green", "Blue", "Red", "Black"}, CorrectIndex: 0},
			{Prompt: "Where was it?", Choices: []string{"Under a paper", "In the sink", "In a shoe", "Outside"}, CorrectIndex: 0},
		},
	},
	{
		ID:     "s10",
		AgeTag: Age6to8,
		Title:  "The Sunny Hat",
		Body: "It was very sunny. Hana forgot her hat at home. Her friend Ben offered a spare hat from his bag. " +
			"Hana put it on and said, \"You saved my day!\"",
		Questions: []Question{
			{Prompt: "What was the weather?", Choices: []string{"Sunny", "Snowy", "Stormy", "Foggy"}, CorrectIndex: 0},
			{Prompt: "What did Ben share?", Choices: []string{"A spare hat", "A bike", "A book", "A sandwich"}, CorrectIndex: 0},
		},
	},
	{
		ID:     "s11",
		AgeTag: Age8to10,
		Title:  "Nora's Garden Surprise",
		Body: "Nora planted seeds in a balcony box. Every morning she checked the soil and gave it a little water. " +
			"After a week, green sprouts appeared. Two weeks later, a bright yellow flower bloomed. " +
			"Nora realized her daily routine helped the plant grow strong.",
		Questions: []Question{
			{Prompt: "What helped the plant grow?", Choices: []string{"Daily care", "Shouting", "Ignoring it", "Snow"}, CorrectIndex: 0},
			{Prompt: "What did Nora finally see?", Choices: []string{"A yellow flower", "A blue car", "A big dog", "A new toy"}, CorrectIndex: 0},
		},
	},
	{
		ID:     "s12",
		AgeTag: Age8to10,
		Title:  "The Library Helper",
		Body: "Omar saw a sign: \"Helpers Needed.\" He returned books using a small cart and read shelf labels carefully. " +
			"He helped a younger kid find a dinosaur book. The librarian said, \"You were kind and careful.\" Omar felt proud.",
		Questions: []Question{
			{Prompt: "How did Omar find the right shelf?", Choices: []string{"He read labels", "He guessed", "He ran", "He asked a robot"}, CorrectIndex: 0},
			{Prompt: "How did the librarian describe him?", Choices: []string{"Kind and careful", "Lazy", "Noisy", "Sleepy"}, CorrectIndex: 0},
		},
	},
	{
		ID:     "s13",
		AgeTag: Age8to10,
		Title:  "The Rainy Day Plan",
		Body: "It rained all day, so Aisha made a 'rainy day plan': build a pillow fort, draw a comic, and bake banana muffins. " +
			"Soon the fort was cozy and the muffins smelled amazing. Aisha realized rainy days can still be great.",
		Questions: []Question{
			{Prompt: "What made the day better?", Choices: []string{"A plan", "Complaining", "Doing nothing", "Breaking things"}, CorrectIndex: 0},
			{Prompt: "What did Aisha bake?", Choices: []string{"Banana muffins", "Fish", "Bread only", "Ice"}, CorrectIndex: 0},
		},
	},
	{
		ID:     "s14",
		AgeTag: Age8to10,
		Title:  "The Science Fair Poster",
		Body: "Lea wanted her poster to be easy to read. She used big titles, neat drawings, and short bullet points. " +
			"When her friend tested it, they understood the project quickly. Lea learned: clear design helps people learn.",
		Questions: []Question{
			{Prompt: "What helped people understand?", Choices: []string{"Clear design", "Tiny text", "Messy colors", "No titles"}, CorrectIndex: 0},
			{Prompt: "What did Lea use?", Choices: []string{"Big titles", "Secret codes", "Invisible ink", "Only stickers"}, CorrectIndex: 0},
		},
	},
	{
		ID:     "s15",
		AgeTag: Age8to10,
		Title:  "The Lost Homework",
		Body: "Kai couldn't find his homework. Instead of panicking, he made a list of places to check: backpack, desk, folder, and couch. " +
			"He found it inside a notebook. Kai learned that a calm checklist saves time.",
		Questions: []Question{
			{Prompt: "What strategy helped Kai?", Choices: []string{"A checklist", "Crying", "Running away", "Waiting"}, CorrectIndex: 0},
			{Prompt: "Where was the homework?", Choices: []string{"Inside a notebook", "In the fridge", "In a tree", "At the beach"}, CorrectIndex: 0},
		},
	},
	{
		ID:     "s16",
		AgeTag: Age8to10,
		Title:  "The Team Puzzle",
		Body: "Two friends raced to finish a 200-piece puzzle. They kept grabbing the same pieces and bumping elbows. " +
			"Then they decided: one person finds edge pieces, the other sorts colors. The puzzle went faster right away.",
		Questions: []Question{
			{Prompt: "What made the puzzle faster?", Choices: []string{"Sharing roles", "Arguing", "Hiding pieces", "Stopping"}, CorrectIndex: 0},
			{Prompt: "What did one person collect?", Choices: []string{"Edge pieces", "Candy", "Shoes", "Balloons"}, CorrectIndex: 0},
		},
	},
	{
		ID:     "s17",
		AgeTag: Age8to10,
		Title:  "The Helpful Map",
		Body: "On a class trip, the group needed the museum's dinosaur room. Salma read the map legend and followed the arrows. " +
			"She guided her class to the right hallway. Everyone thanked her for staying focused.",
		Questions: []Question{
			{Prompt: "What did Salma read?", Choices: []string{"Map legend", "Comic book", "Recipe", "Ticket only"}, CorrectIndex: 0},
			{Prompt: "Where were they going?", Choices: []string{"Dinosaur room", "Swimming pool", "Cinema", "Zoo"}, CorrectIndex: 0},
		},
	},
	{
		ID:     "s18",
		AgeTag: Age8to10,
		Title:  "The Friendly Debate",
		Body: "In class, students debated: cats or dogs? Yuki listened first, then shared her reasons politely. " +
			"When someone disagreed, she said, \"That's a good point.\" The teacher praised respectful speaking.",
		Questions: []Question{
			{Prompt: "What did Yuki do first?", Choices: []string{"Listened", "Shouted", "Laughed", "Left"}, CorrectIndex: 0},
			{Prompt: "What did the teacher praise?", Choices: []string{"Respectful speaking", "Being loud", "Interrupting", "Ignoring"}, CorrectIndex: 0},
		},
	},
	{
		ID:     "s19",
		AgeTag: Age8to10,
		Title:  "The Recycling Captain",
		Body: "Mina noticed bottles and paper mixed together. She made simple labels: Paper, Plastic, and Trash. " +
			"Soon, her family sorted waste faster. Mina felt like a 'recycling captain' helping the planet.",
		Questions: []Question{
			{Prompt: "What did Mina create?", Choices: []string{"Labels", "A rocket", "A new TV", "A sandwich"}, CorrectIndex: 0},
			{Prompt: "What improved?", Choices: []string{"Sorting waste", "Sleeping time", "Rainfall", "Video games"}, CorrectIndex: 0},
		},
	},
	{
		ID:     "s20",
		AgeTag: Age8to10,
		Title:  "The Practice Song",
		Body: "Rafi wanted to play a short song on the keyboard. He practiced slowly, one hand at a time. " +
			"Each day sounded a little better. After a week, he played the whole song smoothly and grinned.",
		Questions: []Question{
			{Prompt: "How did Rafi practice?", Choices: []string{"Slowly and step by step", "Only once", "Very fast", "Not at all"}, CorrectIndex: 0},
			{Prompt: "What happened after a week?", Choices: []string{"He played smoothly", "He forgot", "He broke it", "He stopped"}, CorrectIndex: 0},
		},
	},
	{
		ID:     "s21",
		AgeTag: Age8to10,
		Title:  "The Mystery Footprints",
		Body: "After rain, Tessa saw tiny footprints on the balcony. She followed them to a corner and found a small snail. " +
			"Tessa learned snails leave trails and move slowly, especially after wet weather.",
		Questions: []Question{
			{Prompt: "What made the footprints?", Choices: []string{"A snail", "A bird", "A cat", "A fish"}, CorrectIndex: 0},
			{Prompt: "When do snails move more?", Choices: []string{"After wet weather", "In desert heat", "Only at noon", "Never"}, CorrectIndex: 0},
		},
	},
}
