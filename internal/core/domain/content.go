package domain

// Word is one entry of the word-of-the-day list.
type Word struct {
	Word        string `json:"word"`
	Description string `json:"description"`
}

// SoundLink is a curated listening suggestion tagged with the moods it
// suits. The "all" tag makes a link show up for every mood.
type SoundLink struct {
	Title string   `json:"title"`
	Moods []string `json:"moods"`
	URL   string   `json:"url"`
}

// HasMood reports whether the link carries the given mood tag.
func (l SoundLink) HasMood(mood string) bool {
	for _, m := range l.Moods {
		if m == mood {
			return true
		}
	}
	return false
}

// DefaultWords is the built-in word-of-the-day list: one word per week of
// the year.
func DefaultWords() []Word {
	return []Word{
		{"Breathe", "One slow breath is a fresh start."},
		{"Calm", "Quiet is something you can carry with you."},
		{"Courage", "Small brave steps still count."},
		{"Kindness", "Start with being kind to yourself."},
		{"Hope", "Tomorrow is allowed to be better."},
		{"Gentle", "Soften the voice you use on yourself."},
		{"Patience", "Growing things take their time."},
		{"Gratitude", "Notice one good thing today."},
		{"Strength", "You have made it through every hard day so far."},
		{"Peace", "Let something small be enough."},
		{"Joy", "Tiny delights are still delights."},
		{"Trust", "You know more than you think."},
		{"Growth", "Progress, not perfection."},
		{"Balance", "Rest is part of the work."},
		{"Rest", "Doing nothing is doing something."},
		{"Focus", "One thing at a time is plenty."},
		{"Presence", "Right now is the only place life happens."},
		{"Warmth", "Be somewhere that feels soft today."},
		{"Renewal", "Every morning resets the page."},
		{"Wonder", "Look up once today."},
		{"Grace", "You are allowed to be a work in progress."},
		{"Steady", "Slow and steady is still forward."},
		{"Light", "Find one bright spot and stand in it."},
		{"Bloom", "You do not have to rush your season."},
		{"Ease", "Not everything needs effort."},
		{"Comfort", "Wrap up in something familiar."},
		{"Clarity", "Step back until the picture makes sense."},
		{"Resilience", "Bending is not breaking."},
		{"Softness", "Being gentle is not being weak."},
		{"Stillness", "Sit with the quiet for a minute."},
		{"Care", "Tend to yourself like a friend would."},
		{"Healing", "Mending happens in small stitches."},
		{"Openness", "Let today surprise you a little."},
		{"Acceptance", "Some days are just days."},
		{"Belonging", "You fit here."},
		{"Serenity", "Choose the calmer thought."},
		{"Spark", "Follow the thing that interests you."},
		{"Shelter", "Make a small safe corner of the day."},
		{"Tenderness", "Handle your feelings with care."},
		{"Rooted", "Feet on the ground, shoulders down."},
		{"Flow", "Let the day move at its own pace."},
		{"Quiet", "Turn the volume down on everything."},
		{"Brave", "Showing up counts as bravery."},
		{"Mindful", "Notice, without fixing."},
		{"Nourish", "Feed the good things."},
		{"Release", "Put down what is not yours to carry."},
		{"Grounded", "Name five things you can see."},
		{"Shine", "You do not need permission to take up space."},
		{"Enough", "You already are."},
		{"Forward", "Any direction but backwards."},
		{"Anchor", "Find the one steady thing and hold it."},
		{"Harmony", "Let the parts of your day agree with each other."},
	}
}

// DefaultQuotes is the local fallback list used when the remote quote
// search is unavailable.
func DefaultQuotes() []Quote {
	return []Quote{
		{Content: "Progress, not perfection.", Author: "Unknown"},
		{Content: "You don't have to control your thoughts. You just have to stop letting them control you.", Author: "Dan Millman"},
		{Content: "Almost everything will work again if you unplug it for a few minutes, including you.", Author: "Anne Lamott"},
		{Content: "Nothing diminishes anxiety faster than action.", Author: "Walter Anderson"},
		{Content: "Be gentle with yourself, you're doing the best you can.", Author: "Unknown"},
		{Content: "The quieter you become, the more you can hear.", Author: "Ram Dass"},
		{Content: "Feelings are just visitors. Let them come and go.", Author: "Mooji"},
		{Content: "Start where you are. Use what you have. Do what you can.", Author: "Arthur Ashe"},
		{Content: "Within you, there is a stillness and a sanctuary to which you can retreat at any time.", Author: "Hermann Hesse"},
		{Content: "Every day may not be good, but there is something good in every day.", Author: "Alice Morse Earle"},
		{Content: "Tension is who you think you should be. Relaxation is who you are.", Author: "Chinese proverb"},
		{Content: "Breath is the bridge which connects life to consciousness.", Author: "Thich Nhat Hanh"},
	}
}

// DefaultSoundLinks is the built-in listening directory from the sounds
// page.
func DefaultSoundLinks() []SoundLink {
	return []SoundLink{
		{Title: "Rain ambience", Moods: []string{"anxious", "stressed", "sleep", "all"}, URL: "https://www.youtube.com/watch?v=2OEL4P1Rz04"},
		{Title: "Ocean waves", Moods: []string{"anxious", "sleep", "all"}, URL: "https://www.youtube.com/watch?v=bn9F19Hi1Lk"},
		{Title: "Forest ambience", Moods: []string{"stressed", "focus", "all"}, URL: "https://www.youtube.com/watch?v=odJxJRAxdFU"},
		{Title: "Calm piano", Moods: []string{"low", "anxious", "all"}, URL: "https://www.youtube.com/watch?v=q76bMs-NwRk"},
		{Title: "Meditation bells", Moods: []string{"anxious", "sleep", "all"}, URL: "https://www.youtube.com/watch?v=nmFUDkj1Aq0"},
		{Title: "Breath-focused music", Moods: []string{"anxious", "stressed", "all"}, URL: "https://www.youtube.com/watch?v=MIr3RsUWrdo"},
		{Title: "Focus lo-fi", Moods: []string{"focus", "all"}, URL: "https://www.youtube.com/watch?v=jfKfPfyJRdk"},
		{Title: "Sleep soundscape", Moods: []string{"sleep", "all"}, URL: "https://www.youtube.com/watch?v=1ZYbU82GVz4"},
	}
}
