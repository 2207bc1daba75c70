package service

import "github.com/you/go-trip-tracker/internal/domain"

// DemoTrips is the sample trip list loaded when seeding is enabled.
func DemoTrips() []domain.Trip {
	return []domain.Trip{
		{
			ID:          "1",
			Destination: "Chicago, IL",
			StartDate:   "2024-06-06",
			EndDate:     "2024-06-08",
			Description: "Beyond Chicago 2025",
			ImageURL:    "https://d3vhc53cl8e8km.cloudfront.net/hello-staging/wp-content/uploads/sites/113/2025/03/04095433/bwc_2025_mk_te_fest_site_dh_3200x1520_r01-scaled.jpg",
		},
		{
			ID:          "2",
			Destination: "Miami, FL",
			StartDate:   "2024-06-17",
			EndDate:     "2024-06-19",
			Description: "Glass Animals, favourite band at the moment",
			ImageURL:    "https://www.dailynews.com/wp-content/uploads/2017/09/0430_fea_ocr-l-glassanimals-01-1.jpg?w=719",
		},
		{
			ID:          "3",
			Destination: "Vancouver, Canada",
			StartDate:   "2024-07-04",
			EndDate:     "2024-07-07",
			Description: "League of Legends MSI Tournament!",
			ImageURL:    "https://admin.esports.gg/wp-content/uploads/2024/04/League-of-Legends-MSI-2024-All-Qualified-Teams-968x544.jpg",
		},
		{
			ID:          "4",
			Destination: "Los Angeles, CA (hometown)",
			StartDate:   "2024-05-17",
			EndDate:     "2024-05-24",
			Description: "Sister Graduation",
			ImageURL:    "https://www.athens.edu/wp-content/uploads/2023/04/IMG_4251-scaled-e1681739733424.jpg",
		},
		{
			ID:          "5",
			Destination: "Wroclaw, Poland",
			StartDate:   "2024-08-23",
			EndDate:     "2024-09-01",
			Description: "Festival week",
			ImageURL:    "https://images.theconversation.com/files/634206/original/file-20241022-15-81z9dy.jpg?ixlib=rb-4.1.0&rect=0%2C0%2C6048%2C4019&q=20&auto=format&w=320&fit=clip&dpr=2&usm=12&cs=strip",
		},
		{
			ID:          "6",
			Destination: "Berlin, Germany",
			StartDate:   "2024-08-25",
			EndDate:     "2024-08-28",
			Description: "Berlin weekend",
			ImageURL:    "https://i0.wp.com/www.mymeenalife.com/wp-content/uploads/2016/07/IMG_4451-2.jpg?fit=750%2C500&ssl=1",
		},
	}
}
