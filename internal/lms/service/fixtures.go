package service

import "github.com/futurexhq/futurex/internal/lms/domain"

// Fixture records seeded on first run. They mirror the mock data the
// FutureX client has always shipped with, so a fresh data file behaves like
// a fresh install.

var seedAccounts = []domain.Account{
	{
		ID:        "s1",
		Name:      "Alex Johnson",
		Email:     "alex@student.futurex.com",
		Role:      domain.RoleStudent,
		AvatarURL: "https://picsum.photos/200",
		Phone:     "+1 (555) 012-3456",
		Bio:       "Aspiring Full Stack Developer passionate about React and Node.js.",
		Password:  "password",
	},
	{
		ID:        "t1",
		Name:      "Sarah Connor",
		Email:     "sarah@trainer.futurex.com",
		Role:      domain.RoleTrainer,
		AvatarURL: "https://picsum.photos/201",
		Phone:     "+1 (555) 987-6543",
		Bio:       "Senior Software Engineer with 10+ years of experience in web technologies.",
		Password:  "password",
	},
	{
		ID:        "t2",
		Name:      "Dr. Alan Grant",
		Email:     "alan@trainer.futurex.com",
		Role:      domain.RoleTrainer,
		AvatarURL: "https://picsum.photos/205",
		Phone:     "+1 (555) 555-5555",
		Bio:       "Data Scientist and Paleontologist.",
		Password:  "password",
	},
	{
		ID:        "a1",
		Name:      "Admin User",
		Email:     "admin@futurex.com",
		Role:      domain.RoleAdmin,
		AvatarURL: "https://picsum.photos/202",
		Phone:     "+1 (555) 000-0000",
		Password:  "password",
	},
}

var seedReviews = []domain.Review{
	{
		ID:            "r1",
		StudentID:     "s1",
		StudentName:   "Alex Johnson",
		StudentAvatar: "https://picsum.photos/200",
		Rating:        5,
		Comment:       "The Full Stack course completely changed my career path. The live sessions with Sarah were incredibly detailed and helpful.",
		Date:          "2025-01-15",
		Status:        domain.ReviewApproved,
		CourseName:    "Full Stack React Development",
	},
	{
		ID:            "r2",
		StudentID:     "s2",
		StudentName:   "Emily Davis",
		StudentAvatar: "https://picsum.photos/203",
		Rating:        4,
		Comment:       "Great content and platform. I loved the UI/UX design module. The only thing I wish is that we had more offline meetups.",
		Date:          "2025-02-02",
		Status:        domain.ReviewApproved,
		CourseName:    "UI/UX Design Bootcamp",
	},
	{
		ID:            "r3",
		StudentID:     "s3",
		StudentName:   "Michael Chen",
		StudentAvatar: "https://picsum.photos/204",
		Rating:        5,
		Comment:       "FutureX is hands down the best LMS I have used. The recorded sessions feature saved me when I missed classes due to work.",
		Date:          "2025-02-10",
		Status:        domain.ReviewApproved,
		CourseName:    "Data Science with Python",
	},
}

var seedCourses = []domain.Course{
	{
		ID:               "c1",
		Title:            "Full Stack React Development",
		Description:      "Master the MERN stack with live projects and expert guidance.",
		InstructorName:   "Sarah Connor",
		Price:            499,
		Duration:         "12 Weeks",
		Category:         "Development",
		Rating:           4.8,
		StudentsEnrolled: 1240,
		Image:            "https://picsum.photos/600/400?random=1",
		Mode:             domain.ModeOnline,
		NextBatchDate:    "2023-11-15",
		Progress:         65,
	},
	{
		ID:               "c2",
		Title:            "Data Science with Python",
		Description:      "From basic statistics to advanced machine learning models.",
		InstructorName:   "Dr. Alan Grant",
		Price:            599,
		Duration:         "16 Weeks",
		Category:         "Data Science",
		Rating:           4.9,
		StudentsEnrolled: 850,
		Image:            "https://picsum.photos/600/400?random=2",
		Mode:             domain.ModeOnline,
		NextBatchDate:    "2023-11-20",
		Progress:         30,
	},
	{
		ID:               "c3",
		Title:            "Digital Marketing Mastery",
		Description:      "SEO, SEM, and Social Media strategies for 2024.",
		InstructorName:   "Emily Chen",
		Price:            299,
		Duration:         "6 Weeks",
		Category:         "Marketing",
		Rating:           4.6,
		StudentsEnrolled: 2100,
		Image:            "https://picsum.photos/600/400?random=3",
		Mode:             domain.ModeRecorded,
	},
	{
		ID:               "c4",
		Title:            "UI/UX Design Bootcamp",
		Description:      "Learn Figma, wireframing, and design systems.",
		InstructorName:   "Mike Ross",
		Price:            450,
		Duration:         "10 Weeks",
		Category:         "Design",
		Rating:           4.7,
		StudentsEnrolled: 500,
		Image:            "https://picsum.photos/600/400?random=4",
		Mode:             domain.ModeOffline,
		NextBatchDate:    "2023-12-01",
	},
}
